package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkunkel/tix/internal/styles"
	"github.com/mkunkel/tix/internal/tui"
)

// Browse lists recent tickets in an interactive table. A custom JQL
// query can be passed with --jql.
func Browse(args []string) {
	jql, _ := flagValue(args, "--jql")

	e := setup("browse")
	defer e.finish()

	if jql == "" {
		jql = "project = " + e.cfg.ProjectKey + " ORDER BY updated DESC"
	}

	issues, err := e.client.Search(context.Background(), jql, 50)
	if err != nil {
		e.log.RequestFailed("browse", err)
		fail("Search failed", err)
	}
	if len(issues) == 0 {
		fmt.Println(styles.DimStyle.Render("No matching tickets"))
		return
	}

	rows := make([]tui.IssueRow, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, tui.IssueRow{
			Key:     issue.Key,
			Type:    issue.Fields.IssueType.Name,
			Status:  issue.Fields.Status.Name,
			Summary: issue.Fields.Summary,
		})
	}

	p := tea.NewProgram(tui.InitBrowseModel(rows), tea.WithInput(os.Stdin))
	final, err := p.Run()
	if err != nil {
		fail("Error", err)
	}

	if picker, ok := final.(interface{ Selected() string }); ok && picker.Selected() != "" {
		fmt.Println(styles.LinkStyle.Render(e.client.BrowseURL(picker.Selected())))
	}
}
