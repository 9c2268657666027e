package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkunkel/tix/internal/jira"
	"github.com/mkunkel/tix/internal/styles"
)

// Move transitions a ticket to another status. With only a key it lists
// the available moves; the target can be given by name or list index.
func Move(args []string) {
	if len(args) == 0 {
		fail("Usage: tix move <KEY> [transition]", nil)
	}
	key := args[0]
	target := strings.Join(args[1:], " ")

	e := setup("move")
	defer e.finish()

	transitions, err := e.client.Transitions(context.Background(), key)
	if err != nil {
		e.log.RequestFailed("move", err)
		fail("Error listing transitions for "+key, err)
	}
	if len(transitions) == 0 {
		fail("No transitions available for "+key, nil)
	}

	if target == "" {
		fmt.Println(styles.TitleStyle.Render("Transitions for " + key))
		for i, t := range transitions {
			fmt.Printf("  %s %s %s\n",
				styles.HighlightStyle.Render(strconv.Itoa(i+1)+"."),
				t.Name,
				styles.DimStyle.Render("→ "+t.To.Name))
		}
		fmt.Println()
		fmt.Println(styles.DimStyle.Render("Run: tix move " + key + " <name or number>"))
		return
	}

	chosen := matchTransition(transitions, target)
	if chosen == nil {
		fail("No transition matching "+target+" for "+key, nil)
	}

	if err := e.client.Transition(context.Background(), key, chosen.ID); err != nil {
		e.log.RequestFailed("move", err)
		fail("Error applying "+chosen.Name, err)
	}

	e.log.TransitionApplied(key, chosen.Name)
	fmt.Println(styles.SuccessStyle.Render("✓ "+key+" → ") + styles.HighlightStyle.Render(chosen.To.Name))
}

// matchTransition resolves a user-supplied target against the available
// transitions: 1-based index, exact name, or unique prefix.
func matchTransition(transitions []jira.Transition, target string) *jira.Transition {
	if n, err := strconv.Atoi(target); err == nil && n >= 1 && n <= len(transitions) {
		return &transitions[n-1]
	}

	lower := strings.ToLower(target)
	var prefix *jira.Transition
	prefixHits := 0
	for i := range transitions {
		name := strings.ToLower(transitions[i].Name)
		if name == lower {
			return &transitions[i]
		}
		if strings.HasPrefix(name, lower) {
			prefix = &transitions[i]
			prefixHits++
		}
	}
	if prefixHits == 1 {
		return prefix
	}
	return nil
}
