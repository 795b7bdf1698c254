package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/templeops/internal/docs"
)

const uploadTimeout = 90 * time.Second

func uploadJob(source string) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, uploadTimeout)
		defer cancel()
		text, err := docs.Load(ctx, source)
		if err != nil {
			return uploadResultMsg{source: source, err: err}, err
		}
		return uploadResultMsg{source: source, summary: docs.Summarize(text, summaryPoints)}, nil
	}
}

func thinkCmd(turn uint64, delay time.Duration) tea.Cmd {
	return after(delay, thinkMsg{turn: turn})
}

func stepCmd(turn uint64, delay time.Duration) tea.Cmd {
	return after(delay, stepMsg{turn: turn})
}

func typeCmd(turn uint64, delay time.Duration) tea.Cmd {
	return after(delay, typeMsg{turn: turn})
}

func after(delay time.Duration, msg tea.Msg) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

// parseSlashCommand splits "/upload notice.pdf" into its name and argument.
func parseSlashCommand(input string) (string, string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", "", false
	}
	name, arg, _ := strings.Cut(strings.TrimPrefix(input, "/"), " ")
	return strings.ToLower(name), strings.TrimSpace(arg), true
}

func lookupSlashCommand(name string) (slashCommand, bool) {
	for _, cmd := range slashCommands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return slashCommand{}, false
}

func trimmedTitle(value string) string {
	value = strings.TrimSpace(value)
	if len([]rune(value)) <= 60 {
		return value
	}
	return fmt.Sprintf("%s…", strings.TrimSpace(string([]rune(value)[:57])))
}
