// Package planner builds and formats the action checklists shown in the
// planner section. Everything here is a pure function of its input.
package planner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bullet prefixes every planner line.
const Bullet = "[·] "

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Format renders actions as bullet lines joined by "\n". Line breaks inside
// an action become spaces; nothing else is changed, so Parse(Format(a))
// returns a for any a without line breaks. Callers store Normalize'd actions.
func Format(actions []string) string {
	lines := make([]string, 0, len(actions))
	for _, action := range actions {
		lines = append(lines, Bullet+lineBreaks.Replace(action))
	}
	return strings.Join(lines, "\n")
}

// Parse is the inverse of Format. Lines without a bullet are trimmed and
// kept when non-empty.
func Parse(content string) []string {
	if content == "" {
		return nil
	}
	var actions []string
	for _, line := range strings.Split(content, "\n") {
		if action, ok := strings.CutPrefix(line, Bullet); ok {
			actions = append(actions, action)
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			actions = append(actions, line)
		}
	}
	return actions
}

// Normalize collapses runs of whitespace and drops empty actions.
func Normalize(actions []string) []string {
	out := make([]string, 0, len(actions))
	for _, action := range actions {
		if action = strings.Join(strings.Fields(action), " "); action != "" {
			out = append(out, action)
		}
	}
	return out
}

// Merge appends a new batch to existing planner content. Batches are joined
// with "\n" and duplicates are kept.
func Merge(existing string, actions []string) string {
	if len(actions) == 0 {
		return existing
	}
	add := Format(actions)
	switch {
	case existing == "":
		return add
	default:
		return existing + "\n" + add
	}
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
