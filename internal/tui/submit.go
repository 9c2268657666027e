package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkunkel/tix/internal/styles"
)

// SubmitResult holds the outcome of a tracker request
type SubmitResult struct {
	Key      string
	URL      string
	Detail   string
	Duration time.Duration
}

// SubmitMsg is sent when the tracker request completes
type SubmitMsg struct {
	Result *SubmitResult
	Err    error
}

// submitModel is the Bubble Tea model shown while a request is in flight
type submitModel struct {
	spinner  spinner.Model
	verb     string
	complete bool
	result   *SubmitResult
	err      error
}

// InitSubmitModel creates a progress model for a tracker request; verb is
// shown while waiting ("Creating issue", "Updating TEST-7", ...)
func InitSubmitModel(verb string) submitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return submitModel{
		spinner: s,
		verb:    verb,
	}
}

func (m submitModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m submitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case SubmitMsg:
		m.complete = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m submitModel) View() string {
	if m.complete {
		if m.err != nil {
			return styles.ErrorStyle.Render("✗ "+m.verb+" failed: "+m.err.Error()) + "\n"
		}

		msg := styles.SuccessStyle.Render("✓ " + m.verb + " done")
		if m.result != nil {
			if m.result.Key != "" {
				msg += " " + styles.KeyStyle.Render(m.result.Key)
			}
			if m.result.Detail != "" {
				msg += "\n" + m.result.Detail
			}
			if m.result.URL != "" {
				msg += "\n" + styles.LinkStyle.Render(m.result.URL)
			}
			msg += "\n" + styles.HelpStyle.Render(fmt.Sprintf("Completed in %v", m.result.Duration.Round(time.Millisecond)))
		}
		return msg + "\n"
	}

	return fmt.Sprintf("%s %s...\n\n%s",
		m.spinner.View(),
		m.verb,
		styles.HelpStyle.Render("Press q to abort"))
}
