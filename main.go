package main

import (
	"fmt"
	"os"

	"github.com/mkunkel/tix/internal/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "create", "new":
		commands.Create(os.Args[2:])
	case "view", "show":
		commands.View(os.Args[2:])
	case "edit":
		commands.Edit(os.Args[2:])
	case "move", "transition":
		commands.Move(os.Args[2:])
	case "log", "worklog":
		commands.Worklog(os.Args[2:])
	case "comment":
		commands.Comment(os.Args[2:])
	case "browse", "list":
		commands.Browse(os.Args[2:])
	case "stats":
		commands.Stats()
	case "version", "-v", "--version":
		fmt.Printf("tix v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `tix - Jira tickets from the terminal

Usage:
  tix <command> [options]

Commands:
  create      File a new ticket (interactive unless --summary is given)
  view        Show a ticket with its rendered description
  edit        Rewrite a ticket's description with a diff preview
  move        Transition a ticket to another status
  log         Record time spent on a ticket
  comment     Post a comment
  browse      Browse recent tickets in the project
  stats       Show command usage statistics
  version     Show version information
  help        Show this help message

Descriptions, comments, and worklog notes support **bold**, *italic*,
` + "`code`" + `, [links](https://...), bare URLs, and ticket keys (TEST-123),
all converted to the tracker's document format.

Examples:
  tix create
  tix create --summary "Login broken" --description "See TEST-12, fix **now**"
  tix view TEST-12
  tix move TEST-12 "In Progress"
  tix log TEST-12 1h30m --note "paired with alice"
  tix browse --jql "assignee = currentUser()"

Configuration lives at ~/.config/tix/config.yml; the API token can also
come from TIX_API_TOKEN.
`
	fmt.Print(usage)
}
