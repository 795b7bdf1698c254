// Package simulation owns the assistant's session state: the chat log, the
// canvas sections and the staged reveal that plays after each query.
package simulation

import (
	"errors"
	"time"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/parser"
)

// Role identifies who wrote a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Status is the session's position in a turn.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusComplete   Status = "complete"
)

const (
	// RecPrefix marks a query that came from a recommendation click.
	RecPrefix = "[REC] "
	// PlanningMessage is posted once per turn when the canvas starts to fill.
	PlanningMessage = "Planning…"
)

// ErrEmptyQuery is returned when a blank query is submitted.
var ErrEmptyQuery = errors.New("simulation: empty query")

// ChatMessage is one entry of the chat log. Text grows toward FullText while
// IsTyping is set.
type ChatMessage struct {
	ID       string
	Role     Role
	Text     string
	FullText string
	IsTyping bool
}

// State is a point-in-time copy of the session.
type State struct {
	Status   Status
	Messages []ChatMessage
	Sections []canvas.Section
	// Module is the dashboard module last switched to.
	Module string
}

// Planner returns the planner section, if present.
func (s State) Planner() (canvas.Section, bool) {
	for _, sec := range s.Sections {
		if sec.IsPlanner() {
			return sec, true
		}
	}
	return canvas.Section{}, false
}

// Options adjust how one query is submitted.
type Options struct {
	IsRecommendation bool
	// DisplayQuery is shown in the chat instead of the processed query.
	DisplayQuery string
	// OnVIPVisitParsed and OnModuleDetected run after the reply is applied,
	// outside the session lock. Under a Runner they run on the turn's
	// goroutine and must not call Start.
	OnVIPVisitParsed func(parser.VIPVisit)
	OnModuleDetected func(string)
}

// Turn identifies one submitted query. Session methods ignore turns that
// have been superseded.
type Turn struct {
	ID      uint64
	Query   string
	Display string
}

// Tick is the result of one scheduler step: wait Delay before the next step,
// or stop when Done.
type Tick struct {
	Delay time.Duration
	Done  bool
}

// Pacing holds the reveal delays.
type Pacing struct {
	Think            time.Duration
	SectionCharDelay time.Duration
	SectionPause     time.Duration
	ChatCharDelay    time.Duration
}

// DefaultPacing returns the delays used when nothing is configured.
func DefaultPacing() Pacing {
	return Pacing{
		Think:            800 * time.Millisecond,
		SectionCharDelay: 4 * time.Millisecond,
		SectionPause:     300 * time.Millisecond,
		ChatCharDelay:    12 * time.Millisecond,
	}
}
