package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkunkel/tix/internal/adf"
	"github.com/mkunkel/tix/internal/styles"
)

// Comment posts a comment on a ticket. Text comes from the remaining
// arguments, or from stdin when none are given.
func Comment(args []string) {
	if len(args) == 0 {
		fail("Usage: tix comment <KEY> [text]", nil)
	}
	key := args[0]
	text := strings.Join(args[1:], " ")

	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail("Error reading stdin", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		fail("Nothing to post", nil)
	}

	e := setup("comment")
	defer e.finish()

	doc := adf.FromDocument(e.converter().Convert(text))
	if err := e.client.AddComment(context.Background(), key, doc); err != nil {
		e.log.RequestFailed("comment", err)
		fail("Error commenting on "+key, err)
	}

	e.log.CommentAdded(key)
	fmt.Println(styles.SuccessStyle.Render("✓ Commented on ") + styles.KeyStyle.Render(key))
}
