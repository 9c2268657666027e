package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/mkunkel/tix/internal/adf"
	"github.com/mkunkel/tix/internal/styles"
)

// Worklog records time spent on a ticket, e.g. `tix log TEST-7 1h30m`.
// An optional --note goes through the markup converter like any other
// description text.
func Worklog(args []string) {
	note, args := flagValue(args, "--note")
	if len(args) < 2 {
		fail("Usage: tix log <KEY> <duration> [--note text]", nil)
	}
	key := args[0]

	spent, err := time.ParseDuration(args[1])
	if err != nil || spent <= 0 {
		fail("Invalid duration "+args[1]+" (try 30m, 1h30m)", nil)
	}

	e := setup("log")
	defer e.finish()

	var noteDoc *adf.Doc
	if note != "" {
		doc := adf.FromDocument(e.converter().Convert(note))
		noteDoc = &doc
	}

	started := time.Now().Add(-spent)
	if err := e.client.AddWorklog(context.Background(), key, started, spent, noteDoc); err != nil {
		e.log.RequestFailed("log", err)
		fail("Error logging work on "+key, err)
	}

	e.log.WorklogAdded(key, spent)
	fmt.Println(styles.SuccessStyle.Render("✓ Logged "+spent.String()+" on ") + styles.KeyStyle.Render(key))
}
