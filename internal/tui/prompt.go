package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkunkel/tix/internal/styles"
)

// PromptModel collects a summary line and a free-form description. The
// description accepts the markup dialect (bold, italic, code, links,
// ticket references) and is converted before submission.
type PromptModel struct {
	summary     textinput.Model
	description textarea.Model
	withSummary bool
	focusDesc   bool
	done        bool
	aborted     bool
}

// InitPromptModel builds the create/edit form. withSummary controls
// whether the summary input is shown (edits touch only the description).
func InitPromptModel(withSummary bool, prefillSummary, prefillDescription string) PromptModel {
	summary := textinput.New()
	summary.Placeholder = "Short summary"
	summary.CharLimit = 255
	summary.Width = 72
	summary.SetValue(prefillSummary)

	description := textarea.New()
	description.Placeholder = "Description (supports **bold**, *italic*, `code`, [links](url), ticket keys)"
	description.SetWidth(72)
	description.SetHeight(10)
	description.SetValue(prefillDescription)

	m := PromptModel{
		summary:     summary,
		description: description,
		withSummary: withSummary,
	}
	if withSummary {
		m.summary.Focus()
	} else {
		m.focusDesc = true
		m.description.Focus()
	}
	return m
}

// Done reports whether the form was submitted
func (m PromptModel) Done() bool { return m.done }

// Aborted reports whether the form was cancelled
func (m PromptModel) Aborted() bool { return m.aborted }

// Summary returns the entered summary line
func (m PromptModel) Summary() string { return m.summary.Value() }

// Description returns the entered description text
func (m PromptModel) Description() string { return m.description.Value() }

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "ctrl+d":
			m.done = true
			return m, tea.Quit

		case "tab", "shift+tab":
			if m.withSummary {
				m.focusDesc = !m.focusDesc
				if m.focusDesc {
					m.summary.Blur()
					return m, m.description.Focus()
				}
				m.description.Blur()
				return m, m.summary.Focus()
			}

		case "enter":
			// Enter on the summary line moves to the description;
			// inside the description it inserts a newline.
			if m.withSummary && !m.focusDesc {
				m.focusDesc = true
				m.summary.Blur()
				return m, m.description.Focus()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusDesc {
		m.description, cmd = m.description.Update(msg)
	} else {
		m.summary, cmd = m.summary.Update(msg)
	}
	return m, cmd
}

func (m PromptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	view := ""
	if m.withSummary {
		view += styles.TitleStyle.Render("Summary") + "\n" + m.summary.View() + "\n\n"
	}
	view += styles.TitleStyle.Render("Description") + "\n" + m.description.View() + "\n\n"
	view += styles.HelpStyle.Render("tab: switch field • ctrl+d: submit • esc: cancel")
	return view
}
