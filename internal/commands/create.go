package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkunkel/tix/internal/adf"
	"github.com/mkunkel/tix/internal/jira"
	"github.com/mkunkel/tix/internal/styles"
	"github.com/mkunkel/tix/internal/tui"
)

// Create files a new ticket. Summary and description come from flags or,
// when absent, from the interactive form.
func Create(args []string) {
	e := setup("create")
	defer e.finish()

	summary, args := flagValue(args, "--summary")
	description, args := flagValue(args, "--description")
	project, args := flagValue(args, "--project")
	issueType, _ := flagValue(args, "--type")

	if project == "" {
		project = e.cfg.ProjectKey
	}
	if issueType == "" {
		issueType = e.cfg.IssueType
	}

	if summary == "" {
		fmt.Println(styles.TitleStyle.Render("New ticket in " + project))
		fmt.Println()

		form := tui.InitPromptModel(true, "", description)
		p := tea.NewProgram(form, tea.WithInput(os.Stdin))
		final, err := p.Run()
		if err != nil {
			fail("prompt failed", err)
		}

		m := final.(tui.PromptModel)
		if m.Aborted() || strings.TrimSpace(m.Summary()) == "" {
			fmt.Println(styles.DimStyle.Render("Cancelled, nothing created"))
			return
		}
		summary = strings.TrimSpace(m.Summary())
		description = m.Description()
	}

	doc := adf.FromDocument(e.converter().Convert(description))
	fields := jira.IssueFields{
		ProjectKey:  project,
		Summary:     summary,
		IssueType:   issueType,
		Description: &doc,
	}

	m := tui.InitSubmitModel("Creating issue")
	p := tea.NewProgram(m, tea.WithInput(os.Stdin))

	go func() {
		start := time.Now()
		key, err := e.client.CreateIssue(context.Background(), fields)

		var result *tui.SubmitResult
		if err == nil {
			result = &tui.SubmitResult{
				Key:      key,
				URL:      e.client.BrowseURL(key),
				Duration: time.Since(start),
			}
			e.log.IssueCreated(key, project, issueType)
		} else {
			e.log.RequestFailed("create", err)
		}

		p.Send(tui.SubmitMsg{Result: result, Err: err})
	}()

	if _, err := p.Run(); err != nil {
		fail("Error", err)
	}
}
