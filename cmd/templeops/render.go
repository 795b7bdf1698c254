package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/csheth/templeops/internal/simulation"
)

// writeState prints a finished session as plain text.
func writeState(w io.Writer, state simulation.State) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "== Conversation ==")
	for _, msg := range state.Messages {
		switch msg.Role {
		case simulation.RoleUser:
			fmt.Fprintf(out, "You: %s\n", msg.Text)
		case simulation.RoleAssistant:
			fmt.Fprintf(out, "TempleOps: %s\n", msg.Text)
		default:
			fmt.Fprintf(out, "  (%s)\n", msg.Text)
		}
	}
	if state.Module != "" {
		fmt.Fprintf(out, "\nModule: %s\n", state.Module)
	}
	if len(state.Sections) > 0 {
		fmt.Fprintln(out, "\n== Canvas ==")
		for i, sec := range state.Sections {
			if i > 0 {
				fmt.Fprintln(out)
			}
			title := "## " + sec.Title
			if sec.SubTitle != "" {
				title += " (" + sec.SubTitle + ")"
			}
			fmt.Fprintln(out, title)
			fmt.Fprintln(out, strings.TrimRight(sec.VisibleContent, "\n"))
		}
	}
	return out.Flush()
}
