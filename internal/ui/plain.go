package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/palemoky/landlord-counter/internal/tracker"
)

const (
	handPrompt  = "Your Hand: "
	playPrompt  = "> "
	invalidHand = "Invalid Hand"
	wrongHand   = "Wrong Hand"
)

// RunPlain runs the line-oriented counter: one opening hand, then one played
// hand per line until in is exhausted. An invalid opening hand ends the session.
func RunPlain(t *tracker.Tracker, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	if _, err := fmt.Fprint(out, handPrompt); err != nil {
		return err
	}
	line, ok, err := readLine(r)
	if !ok {
		return err
	}
	if err := t.Start(line); err != nil {
		_, err = fmt.Fprintln(out, invalidHand)
		return err
	}
	if _, err := fmt.Fprint(out, t.Remaining().Render()); err != nil {
		return err
	}

	for {
		if _, err := fmt.Fprint(out, playPrompt); err != nil {
			return err
		}
		line, ok, err := readLine(r)
		if !ok {
			return err
		}

		msg := wrongHand + "\n"
		if err := t.Play(line); err == nil {
			msg = t.Remaining().Render()
		}
		if _, err := fmt.Fprint(out, msg); err != nil {
			return err
		}
	}
}

// readLine reads one whole line of any length, trimmed. ok is false once the
// input is exhausted; a final line without a newline is still returned.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	line, err = r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimSpace(line), line != "", nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), true, nil
}
