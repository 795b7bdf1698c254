// Package intent classifies a free-text query into one of a fixed set of
// operational intents by scoring keyword patterns.
package intent

import (
	"math"
	"regexp"
	"strings"

	"github.com/csheth/templeops/internal/keywords"
)

// Kind names an intent.
type Kind string

const (
	VIPVisit     Kind = "vip-visit"
	Appointment  Kind = "appointment"
	Task         Kind = "task"
	Approval     Kind = "approval"
	Finance      Kind = "finance"
	Event        Kind = "event"
	Planner      Kind = "planner"
	ModuleSwitch Kind = "module-switch"
	Unknown      Kind = "unknown"
)

// Detection is the outcome of Detect.
type Detection struct {
	Kind       Kind
	Confidence float64
	Keywords   []string
}

const (
	// A category needs strictly more than this share of its patterns.
	threshold         = 0.4
	unknownConfidence = 0.1
)

type category struct {
	kind     Kind
	ceiling  float64
	patterns []*regexp.Regexp
	// excluded words stop the category from winning at all.
	excluded []string
}

const weekdayAlternation = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

// categories is evaluated in priority order; the first category over the
// threshold wins.
var categories = []category{
	{
		kind:    VIPVisit,
		ceiling: 0.95,
		patterns: compile(
			`\b(?:is|are|will be)\s+(?:visiting|coming|arriving)\b|\bvisit(?:ing|s)?\b`,
			`\b(?:vip|vvip|dignitar(?:y|ies)|delegation)\b`,
			`\b(?:prime minister|chief minister|minister|president|governor|judge|chief justice|ambassador)\b`,
			`\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b|\b(?:today|tomorrow|tonight|morning|afternoon|evening)\b`,
		),
	},
	{
		kind:    Appointment,
		ceiling: 0.9,
		patterns: compile(
			`\b(?:appointments?|meetings?|meet)\b`,
			`\b(?:schedule|book|fix|set up)\b`,
			`\bwith\s+\w+`,
		),
	},
	{
		kind:    Task,
		ceiling: 0.9,
		patterns: compile(
			`\b(?:tasks?|todo|to-do)\b`,
			`\b(?:assign|create|complete|finish)\b`,
			`\b(?:deadline|due)\b|\bby\s+(?:today|tomorrow|`+weekdayAlternation+`)\b`,
		),
	},
	{
		kind:    Approval,
		ceiling: 0.9,
		patterns: compile(
			`\bapprov(?:e|ed|al|als)\b`,
			`\b(?:pending|requests?|sanction)\b`,
			`\b(?:sign[- ]?off|authori[sz]e|review)\b`,
		),
	},
	{
		kind:    Finance,
		ceiling: 0.9,
		patterns: compile(
			`\b(?:finance|financial|budget|expenses?|donations?|payments?|invoices?)\b`,
			`₹|\b(?:rs|inr|rupees|lakhs?|crores?)\b|\b\d[\d,]*\s*k\b`,
			`\b(?:pay|spend|allocate|transfer|reimburse)\b`,
		),
	},
	{
		kind:    Event,
		ceiling: 0.9,
		patterns: compile(
			`\b(?:events?|festivals?|utsava?|rituals?|puja|pooja|yaga|yagna|homa|ceremony|celebration)\b`,
			`\b(?:organi[sz]e|plan|arrange|conduct|host)\b`,
			`\b(?:on|next|this)\s+(?:`+weekdayAlternation+`|week|month|weekend)\b`,
		),
	},
	{
		kind:    Planner,
		ceiling: 0.9,
		patterns: compile(
			`\b(?:add|include|put)\b`,
			`\b(?:plan|planner|checklist|to-?do list)\b`,
			`\b(?:remind|remember|note)\b`,
		),
		excluded: []string{"approval", "approvals", "vip", "vvip", "finance", "financial"},
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Detect scores query against every category in priority order.
func Detect(query string) Detection {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return Detection{Kind: Unknown, Confidence: unknownConfidence}
	}
	words := keywords.New(lower)
	for _, c := range categories {
		if len(c.excluded) > 0 && words.Has(c.excluded...) {
			continue
		}
		var matched []string
		for _, p := range c.patterns {
			if hit := p.FindString(lower); hit != "" {
				matched = append(matched, strings.TrimSpace(hit))
			}
		}
		score := float64(len(matched)) / float64(len(c.patterns))
		if score > threshold {
			return Detection{Kind: c.kind, Confidence: math.Min(score, c.ceiling), Keywords: matched}
		}
	}
	return Detection{Kind: Unknown, Confidence: unknownConfidence}
}

// Kinds lists the scored intents in priority order.
func Kinds() []Kind {
	out := make([]Kind, len(categories))
	for i, c := range categories {
		out[i] = c.kind
	}
	return out
}
