package cli

import (
	"context"
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// spinnerFrames is the braille animation cycle.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerTickMsg advances the animation.
type spinnerTickMsg struct{}

// spinnerDoneMsg carries the result of the wrapped operation.
type spinnerDoneMsg struct{ err error }

// spinnerModel animates a progress indicator while a long-running operation
// (typically the WFS fetch, which can take tens of seconds) executes as a
// bubbletea command.
type spinnerModel struct {
	message string
	frame   int
	done    bool
	err     error
	op      func() error
}

func newSpinnerModel(message string, op func() error) spinnerModel {
	return spinnerModel{message: message, op: op}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(spinnerTick(), func() tea.Msg {
		return spinnerDoneMsg{err: m.op()}
	})
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, spinnerTick()
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = context.Canceled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return styleIconSpinner.Render(spinnerFrames[m.frame]) + " " + styleLabel.Render(m.message)
}

// runWithSpinner executes op while animating a spinner on stderr. The
// spinner stops when op returns or ctx is cancelled; cancellation surfaces
// as the context error so callers can treat it like any other abort.
func runWithSpinner(ctx context.Context, message string, op func() error) error {
	p := tea.NewProgram(
		newSpinnerModel(message, op),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)
	m, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return m.(spinnerModel).err
}
