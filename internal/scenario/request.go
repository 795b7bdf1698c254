package scenario

import (
	"fmt"

	"github.com/csheth/templeops/internal/keywords"
	"github.com/csheth/templeops/internal/parser"
	"github.com/csheth/templeops/internal/planner"
)

var planningVocabulary = []string{
	"plan", "schedule", "organize", "organise", "arrange", "prepare", "need to", "todo", "to do",
	"task", "tasks", "remind", "book",
}

// PlannerRequest turns a free-form planning request into planner actions.
func PlannerRequest(req Request) *Reply {
	if !keywords.Has(req.Query, planningVocabulary...) {
		return nil
	}
	actions := planner.SplitRequest(req.Query)
	if len(actions) == 0 {
		return nil
	}
	subject := "your request"
	if flex := parser.ParseFlexible(req.Query); flex != nil && flex.Kind != parser.FlexibleKitchen {
		subject = flex.Subject
	}
	noun := "actions"
	if len(actions) == 1 {
		noun = "action"
	}
	return &Reply{
		Text:    fmt.Sprintf("I've added %d %s for %s to your planner.", len(actions), noun, subject),
		Planner: actions,
	}
}

// FallbackMessages are the generic acknowledgments for unrecognised queries.
var FallbackMessages = []string{
	"I'm not sure how to help with that yet. Try \"Do we have flower stock?\" or \"Add notify security to plan\".",
	"Noted. I can help with VIP visits, rituals, festivals, inventory and your planner.",
	"Understood. Ask me about today's menu, upcoming events or pending approvals.",
	"Got it. You can also say \"Tomorrow 9 AM, Minister Sharma is visiting\" to prepare a visit.",
}

// Fallback always replies, with no canvas changes.
func Fallback(req Request) *Reply {
	return &Reply{Handler: "fallback", Text: FallbackMessages[req.pick(len(FallbackMessages))]}
}
