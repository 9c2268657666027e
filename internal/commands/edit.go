package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkunkel/tix/internal/adf"
	"github.com/mkunkel/tix/internal/diff"
	"github.com/mkunkel/tix/internal/styles"
	"github.com/mkunkel/tix/internal/tui"
)

// Edit rewrites a ticket's description. The current description is
// prefilled in the editor, the change is shown as a diff, and nothing is
// sent without confirmation.
func Edit(args []string) {
	if len(args) == 0 {
		fail("Usage: tix edit <KEY>", nil)
	}
	key := args[0]

	e := setup("edit")
	defer e.finish()

	issue, err := e.client.GetIssue(context.Background(), key)
	if err != nil {
		e.log.RequestFailed("edit", err)
		fail("Error fetching "+key, err)
	}

	current, err := issue.DescriptionDoc()
	if err != nil {
		fail("Error reading description", err)
	}
	before := adf.ToMarkdown(current)

	fmt.Println(styles.TitleStyle.Render("Edit " + key))
	fmt.Println()

	form := tui.InitPromptModel(false, "", before)
	p := tea.NewProgram(form, tea.WithInput(os.Stdin))
	final, err := p.Run()
	if err != nil {
		fail("prompt failed", err)
	}

	m := final.(tui.PromptModel)
	if m.Aborted() {
		fmt.Println(styles.DimStyle.Render("Cancelled, nothing changed"))
		return
	}
	after := m.Description()

	unified := diff.Unified(key, before, after)
	if unified == "" {
		fmt.Println(styles.DimStyle.Render("No changes"))
		return
	}

	fmt.Print(diff.Render(unified))
	fmt.Print(styles.WarningStyle.Render("Apply this change? [y/N] "))

	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Println(styles.DimStyle.Render("Cancelled, nothing changed"))
		return
	}

	doc := adf.FromDocument(e.converter().Convert(after))

	sm := tui.InitSubmitModel("Updating " + key)
	sp := tea.NewProgram(sm, tea.WithInput(os.Stdin))

	go func() {
		start := time.Now()
		err := e.client.UpdateDescription(context.Background(), key, doc)

		var result *tui.SubmitResult
		if err == nil {
			result = &tui.SubmitResult{
				Key:      key,
				URL:      e.client.BrowseURL(key),
				Duration: time.Since(start),
			}
			e.log.DescriptionUpdated(key, len(doc.Content))
		} else {
			e.log.RequestFailed("edit", err)
		}

		sp.Send(tui.SubmitMsg{Result: result, Err: err})
	}()

	if _, err := sp.Run(); err != nil {
		fail("Error", err)
	}
}
