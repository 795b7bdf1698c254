package scenario

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/csheth/templeops/internal/planner"
)

const planTarget = `(?:my\s+|the\s+)?(?:plan|planner|checklist|to-?do(?:\s+list)?)`

type addRule struct {
	pattern *regexp.Regexp
	extract func(m []string) string
}

func group(i int) func([]string) string {
	return func(m []string) string { return m[i] }
}

// addRules are tried in order; the first matching pattern wins.
var addRules = []addRule{
	{regexp.MustCompile(`(?i)^(?:please\s+)?add\s+(?:to|in|into)\s+` + planTarget + `\s*[:,\-]?\s*(.+)$`), group(1)},
	{regexp.MustCompile(`(?i)^(?:please\s+)?add\s+(.+?)\s+(?:to|in|into)\s+` + planTarget + `\s*[.!]?$`), group(1)},
	{regexp.MustCompile(`(?i)^(.+?)\s*[,:\-]?\s+add(?:\s+it|\s+this)?\s+to\s+` + planTarget + `\s*[.!]?$`), group(1)},
	{regexp.MustCompile(`(?i)^(?:plan|planner|todo)\s*[:\-]\s*(.+)$`), group(1)},
	{regexp.MustCompile(`(?i)^(?:add\s+)?step\s*(\d+)\s*[:.\-]\s*(.+)$`), func(m []string) string {
		return fmt.Sprintf("Step %s: %s", m[1], planner.Capitalize(strings.TrimSpace(m[2])))
	}},
	{regexp.MustCompile(`(?i)^(?:please\s+)?(?:remind\s+me\s+to|remember\s+to|don'?t\s+forget\s+to)\s+(.+)$`), group(1)},
	{regexp.MustCompile(`(?i)^(?:please\s+)?include\s+(.+?)\s+in\s+` + planTarget + `\s*[.!]?$`), group(1)},
	{regexp.MustCompile(`(?i)^(?:add|new)\s+(?:a\s+)?(?:task|action|item)\s*[:\-]?\s+(.+)$`), group(1)},
}

// AddToPlan appends one explicitly requested item to the planner, for
// phrasings like "add review budget to plan".
func AddToPlan(req Request) *Reply {
	for _, rule := range addRules {
		m := rule.pattern.FindStringSubmatch(req.Query)
		if m == nil {
			continue
		}
		item := cleanItem(rule.extract(m))
		if item == "" {
			continue
		}
		return &Reply{
			Text:    fmt.Sprintf("Added %q to your planner.", item),
			Planner: []string{item},
		}
	}
	return nil
}

// isAddRequest reports whether query has one of the add-to-plan shapes, so
// the words inside the item are not read as a request of their own.
func isAddRequest(query string) bool {
	for _, rule := range addRules {
		if rule.pattern.MatchString(query) {
			return true
		}
	}
	return false
}

func cleanItem(s string) string {
	s = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ".!?,;"))
	s = strings.Trim(s, `"'`)
	return planner.Capitalize(strings.Join(strings.Fields(s), " "))
}
