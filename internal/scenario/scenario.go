// Package scenario decides how the assistant answers one query. Handlers run
// in a fixed order and the first one to return a reply wins; none of them
// touch session state.
package scenario

import (
	"strings"
	"time"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/parser"
)

// Request is the input to every handler.
type Request struct {
	Query string
	Now   time.Time
	// Pick returns a number in [0, n). Nil always picks 0.
	Pick func(n int) int
}

func (r Request) pick(n int) int {
	if r.Pick == nil || n <= 1 {
		return 0
	}
	if i := r.Pick(n); i >= 0 && i < n {
		return i
	}
	return 0
}

// Reply describes the display changes for one turn.
type Reply struct {
	// Handler names the handler that produced the reply.
	Handler string
	// Text is the assistant chat message.
	Text string
	// Focus replaces every focus card on the canvas when non-empty.
	Focus []canvas.Section
	// Planner actions are merged into the planner section.
	Planner []string
	// Module is set when the query asked to switch dashboard modules.
	Module string
	// Visit is set when a VIP visit was parsed.
	Visit *parser.VIPVisit
}

// ChatOnly reports whether the reply leaves the canvas untouched.
func (r Reply) ChatOnly() bool {
	return len(r.Focus) == 0 && len(r.Planner) == 0
}

// Handler returns a reply or nil to pass the query on.
type Handler struct {
	Name   string
	Handle func(Request) *Reply
}

// Cascade lists the handlers in evaluation order. Fallback always replies.
var Cascade = []Handler{
	{Name: "module", Handle: ModuleSwitch},
	{Name: "special", Handle: Special},
	{Name: "quick-action", Handle: QuickAction},
	{Name: "inventory", Handle: Inventory},
	{Name: "add-to-plan", Handle: AddToPlan},
	{Name: "named", Handle: Named},
	{Name: "info", Handle: Info},
	{Name: "planner-request", Handle: PlannerRequest},
	{Name: "fallback", Handle: Fallback},
}

// Resolve runs the cascade and returns the first reply.
func Resolve(req Request) Reply {
	req.Query = strings.TrimSpace(req.Query)
	for _, h := range Cascade {
		if reply := h.Handle(req); reply != nil {
			if reply.Handler == "" {
				reply.Handler = h.Name
			}
			return *reply
		}
	}
	return *Fallback(req)
}

// Recommendation answers a query picked from a card's suggestions. Named
// scenarios are consulted first, then the regular cascade.
func Recommendation(req Request) Reply {
	req.Query = strings.TrimSpace(req.Query)
	if reply := Named(req); reply != nil {
		reply.Handler = "recommendation"
		return *reply
	}
	return Resolve(req)
}
