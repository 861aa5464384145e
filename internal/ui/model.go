// Package ui provides the terminal front ends of the card counter.
package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-counter/internal/apperrors"
	"github.com/palemoky/landlord-counter/internal/sound"
	"github.com/palemoky/landlord-counter/internal/tracker"
)

// Phase 界面阶段
type Phase int

const (
	PhaseHand     Phase = iota // 录入自己的手牌
	PhaseTracking              // 逐手记录出牌
)

const helpText = "enter 确认 • ctrl+z 撤销 • ctrl+r 重新开始 • esc 退出"

// CuePlayer plays named sound cues
type CuePlayer interface {
	Play(name string)
}

// Options 界面选项
type Options struct {
	Color bool
	Sound CuePlayer
}

// Model is the bubbletea model of the counter
type Model struct {
	tracker *tracker.Tracker
	phase   Phase
	message string

	color bool
	sound CuePlayer

	input textinput.Model
	width int
}

// NewModel creates the counter UI around t
func NewModel(t *tracker.Tracker, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "例如 KKKAAA00JJ"
	ti.CharLimit = 0 // 超长输入交给 card.Parse 判定为无效
	ti.Width = 30
	ti.Prompt = handPrompt
	ti.Focus()

	m := &Model{
		tracker: t,
		color:   opts.Color,
		sound:   opts.Sound,
		input:   ti,
	}
	m.syncPhase()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit(strings.TrimSpace(m.input.Value()))
			m.input.Reset()
			return m, nil
		case tea.KeyCtrlZ:
			m.undo()
			return m, nil
		case tea.KeyCtrlR:
			m.tracker.Reset()
			m.message = ""
			m.input.Reset()
			m.syncPhase()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(input string) {
	var err error
	if m.phase == PhaseHand {
		err = m.tracker.Start(input)
	} else {
		err = m.tracker.Play(input)
	}

	if err != nil {
		m.message = m.failureText()
		m.cue(sound.CueRejected)
		return
	}

	m.message = ""
	m.cue(sound.CueAccepted)
	m.syncPhase()
}

func (m *Model) undo() {
	if err := m.tracker.Undo(); err != nil {
		var gameErr *apperrors.GameError
		if errors.As(err, &gameErr) {
			m.message = gameErr.Message
		}
		return
	}
	m.message = ""
}

func (m *Model) failureText() string {
	if m.phase == PhaseHand {
		return invalidHand
	}
	return wrongHand
}

func (m *Model) syncPhase() {
	if m.tracker.Started() {
		m.phase = PhaseTracking
		m.input.Prompt = playPrompt
	} else {
		m.phase = PhaseHand
		m.input.Prompt = handPrompt
	}
}

func (m *Model) cue(name string) {
	if m.sound != nil {
		m.sound.Play(name)
	}
}

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle("🃏 斗地主记牌器"))
	sb.WriteString("\n\n")

	if m.phase == PhaseTracking {
		remaining := m.tracker.Remaining()
		sb.WriteString(renderCounter(remaining, m.color))
		sb.WriteString("\n")
		sb.WriteString(renderSummary(remaining, m.tracker.Plays()))
		sb.WriteString("\n")
	}

	sb.WriteString(PromptStyle.Render(m.input.View()))
	sb.WriteString("\n")
	if m.message != "" {
		sb.WriteString(ErrorStyle.Render(m.message))
	}
	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render(helpText))

	view := DocStyle.Render(sb.String())
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, view)
	}
	return view
}

// Phase reports the current phase
func (m *Model) Phase() Phase {
	return m.phase
}

// Message returns the last error line shown to the player
func (m *Model) Message() string {
	return m.message
}
