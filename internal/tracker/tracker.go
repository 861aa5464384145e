// Package tracker owns the remaining-card state of one counting session.
package tracker

import (
	"fmt"
	"slices"

	"github.com/palemoky/landlord-counter/internal/apperrors"
	"github.com/palemoky/landlord-counter/internal/card"
	"github.com/palemoky/landlord-counter/internal/logger"
)

// Tracker tracks cards not yet seen: a full deck minus the player's own hand
// minus every hand played at the table.
type Tracker struct {
	remaining card.Counter
	started   bool
	history   []card.Counter
}

// New creates a tracker holding a full deck
func New() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Reset starts over with a full deck (54 cards)
func (t *Tracker) Reset() {
	t.remaining = card.NewFullCounter()
	t.started = false
	t.history = nil
}

// Start removes the player's own hand from the deck
func (t *Tracker) Start(input string) error {
	if t.started {
		return apperrors.ErrAlreadyStarted
	}

	hand, err := card.Parse(input)
	if err != nil {
		logger.Error("opening hand %q rejected: %v", input, err)
		return err
	}
	if !t.remaining.RemoveHand(hand) {
		logger.Error("opening hand %q rejected: not in deck", input)
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidHand, input)
	}

	t.started = true
	logger.Info("opening hand %q accepted, %d cards unseen", input, t.remaining.Total())
	return nil
}

// Play removes a hand played at the table. The deck is untouched on failure.
func (t *Tracker) Play(input string) error {
	if !t.started {
		return apperrors.ErrNotStarted
	}

	hand, err := card.Parse(input)
	if err != nil {
		logger.Error("play %q rejected: %v", input, err)
		return err
	}
	if !t.remaining.RemoveHand(hand) {
		logger.Error("play %q rejected: not enough cards remaining", input)
		return fmt.Errorf("%w: %q", apperrors.ErrHandNotInDeck, input)
	}

	t.history = append(t.history, hand)
	logger.Info("play %q accepted, %d cards unseen", input, t.remaining.Total())
	return nil
}

// Undo puts the most recent play back into the deck
func (t *Tracker) Undo() error {
	if len(t.history) == 0 {
		return apperrors.ErrNothingToUndo
	}

	last := t.history[len(t.history)-1]
	if !t.remaining.AddHand(last) {
		// 已出的牌必然能放回，否则状态已损坏
		panic("tracker: undo overflowed the deck")
	}
	t.history = t.history[:len(t.history)-1]
	logger.Info("undo, %d cards unseen", t.remaining.Total())
	return nil
}

// Remaining returns a copy of the unseen cards
func (t *Tracker) Remaining() card.Counter {
	return t.remaining
}

func (t *Tracker) Started() bool {
	return t.started
}

// History returns accepted plays, oldest first
func (t *Tracker) History() []card.Counter {
	return slices.Clone(t.history)
}

func (t *Tracker) Plays() int {
	return len(t.history)
}
