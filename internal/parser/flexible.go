package parser

import (
	"regexp"
	"strings"

	"github.com/csheth/templeops/internal/keywords"
)

// FlexibleKind is the shape of a loosely phrased request.
type FlexibleKind string

const (
	FlexiblePlanning FlexibleKind = "planning"
	FlexibleProgress FlexibleKind = "progress"
	FlexibleAction   FlexibleKind = "action"
	FlexibleKitchen  FlexibleKind = "kitchen"
)

// FlexibleMatch is what ParseFlexible recognised.
type FlexibleMatch struct {
	Kind    FlexibleKind
	Verb    string
	Subject string
}

type flexibleRule struct {
	kind    FlexibleKind
	pattern *regexp.Regexp
}

// Capture groups: 1 is the verb, the last is the subject.
var flexibleRules = []flexibleRule{
	{FlexibleProgress, regexp.MustCompile(`(?i)\b(progress|status|update)\s+(?:of|on|for)\s+(?:the\s+)?(.+)$`)},
	{FlexibleProgress, regexp.MustCompile(`(?i)\bhow\s+(?:is|are)\s+(?:the\s+)?(.+?)\s+(going|progressing|coming along)\b`)},
	{FlexiblePlanning, regexp.MustCompile(`(?i)^(?:please\s+)?(?:help\s+me\s+|i\s+need\s+to\s+|we\s+need\s+to\s+|let'?s\s+|can\s+you\s+)?(plan|organi[sz]e|prepare\s+for|arrange|schedule)\s+(?:the\s+|a\s+|an\s+|for\s+)?(.+)$`)},
	{FlexibleAction, regexp.MustCompile(`(?i)^(?:please\s+)?(notify|inform|call|email|remind|assign|book|order|arrange)\s+(.+)$`)},
}

var kitchenTerms = []string{
	"kitchen", "menu", "prasadam", "prasad", "annadanam", "meal", "meals",
	"lunch", "dinner", "breakfast", "cooking",
}

// ParseFlexible recognises planning, progress, action and kitchen phrasings
// that the intent detector does not model. It returns nil for no match.
func ParseFlexible(query string) *FlexibleMatch {
	query = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(query), "?.!"))
	if query == "" {
		return nil
	}
	for _, rule := range flexibleRules {
		m := rule.pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		verb, subject := m[1], m[2]
		if rule.kind == FlexibleProgress && len(m) == 3 && isProgressVerb(m[2]) {
			// "how is X going": the subject comes first.
			verb, subject = m[2], m[1]
		}
		subject = strings.TrimSpace(subject)
		if subject == "" {
			continue
		}
		return &FlexibleMatch{Kind: rule.kind, Verb: strings.ToLower(normalizeSpace(verb)), Subject: subject}
	}
	if term, ok := keywords.Which(query, kitchenTerms...); ok {
		return &FlexibleMatch{Kind: FlexibleKitchen, Subject: term}
	}
	return nil
}

func isProgressVerb(s string) bool {
	switch strings.ToLower(s) {
	case "going", "progressing", "coming along":
		return true
	}
	return false
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
