package tui

import (
	"github.com/csheth/templeops/internal/docs"
)

type stage int

const (
	stageIdle stage = iota
	stageThinking
	stageRevealing
)

const heroTagline = "Plan sevas, visits and festivals with TempleOps."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	paneGap                   = 2
	summaryPoints             = 4
)

const (
	composerChatPlaceholder = "Ask about visits, rituals, stock or the planner…"
	typingCursor            = "▌"
)

// Ticks carry the turn they were scheduled for so ticks from a superseded
// turn are dropped on arrival.
type thinkMsg struct {
	turn uint64
}

type stepMsg struct {
	turn uint64
}

type typeMsg struct {
	turn uint64
}

type uploadResultMsg struct {
	source  string
	summary docs.Summary
	err     error
}

type uploadPanel struct {
	Source  string
	Summary docs.Summary
	Err     string
	Pending bool
}

type slashCommand struct {
	name  string
	usage string
	desc  string
}

var slashCommands = []slashCommand{
	{name: "upload", usage: "/upload <file.pdf|url>", desc: "Summarize a circular or report"},
	{name: "clear", usage: "/clear", desc: "Remove the planner from the canvas"},
	{name: "reset", usage: "/reset", desc: "Start a fresh session"},
	{name: "help", usage: "/help", desc: "Toggle the cheatsheet"},
}
