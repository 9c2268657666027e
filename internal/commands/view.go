package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/mkunkel/tix/internal/adf"
	"github.com/mkunkel/tix/internal/styles"
)

// View fetches a ticket and renders it in the terminal.
func View(args []string) {
	if len(args) == 0 {
		fail("Usage: tix view <KEY>", nil)
	}
	key := args[0]

	e := setup("view")
	defer e.finish()

	issue, err := e.client.GetIssue(context.Background(), key)
	if err != nil {
		e.log.RequestFailed("view", err)
		fail("Error fetching "+key, err)
	}

	fmt.Println(styles.KeyStyle.Render(issue.Key) + "  " + styles.TitleStyle.Render(issue.Fields.Summary))
	fmt.Println(styles.DimStyle.Render(issue.Fields.IssueType.Name + " · " + issue.Fields.Status.Name))
	fmt.Println(styles.LinkStyle.Render(e.client.BrowseURL(issue.Key)))
	fmt.Println()

	doc, err := issue.DescriptionDoc()
	if err != nil {
		fail("Error reading description", err)
	}

	md := adf.ToMarkdown(doc)
	if md == "" {
		fmt.Println(styles.DimStyle.Render("(no description)"))
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(rendered)
}
