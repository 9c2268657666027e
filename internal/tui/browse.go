package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkunkel/tix/internal/styles"
)

// IssueRow is one entry in the issue browser
type IssueRow struct {
	Key     string
	Type    string
	Status  string
	Summary string
}

// browseModel is the Bubble Tea model for the issue browser
type browseModel struct {
	table    table.Model
	selected string
}

// InitBrowseModel creates an issue browser over the given rows
func InitBrowseModel(rows []IssueRow) browseModel {
	columns := []table.Column{
		{Title: "Key", Width: 12},
		{Title: "Type", Width: 10},
		{Title: "Status", Width: 14},
		{Title: "Summary", Width: 56},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.Key, r.Type, r.Status, r.Summary})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = styles.HeaderStyle
	s.Selected = styles.SelectedStyle
	t.SetStyles(s)

	return browseModel{table: t}
}

// Selected returns the key chosen with enter, or "" if the browser was
// dismissed
func (m browseModel) Selected() string { return m.selected }

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return styles.TableStyle.Render(m.table.View()) + "\n" +
		styles.HelpStyle.Render("↑/↓: navigate • enter: open • q: quit") + "\n"
}
