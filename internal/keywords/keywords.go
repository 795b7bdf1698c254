// Package keywords matches words and phrases against free text on token
// boundaries, so that "administer" never counts as "minister".
package keywords

import (
	"strings"
	"unicode"
)

// Tokens lowercases s and splits it into word tokens. Apostrophes are dropped
// inside words ("don't" becomes "dont") and the rupee sign is its own token.
func Tokens(s string) []string {
	var (
		out []string
		b   strings.Builder
	)
	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '₹':
			flush()
			out = append(out, "₹")
		default:
			flush()
		}
	}
	flush()
	return out
}

// Matcher holds the tokens of one piece of text for repeated lookups.
type Matcher struct {
	tokens []string
}

// New tokenizes text once.
func New(text string) Matcher {
	return Matcher{tokens: Tokens(text)}
}

// Has reports whether any term occurs as a contiguous run of whole tokens.
func (m Matcher) Has(terms ...string) bool {
	_, ok := m.Which(terms...)
	return ok
}

// Which returns the first term, in argument order, that occurs in the text.
func (m Matcher) Which(terms ...string) (string, bool) {
	for _, term := range terms {
		if m.index(Tokens(term)) >= 0 {
			return term, true
		}
	}
	return "", false
}

// Count returns how many of the terms occur.
func (m Matcher) Count(terms ...string) int {
	n := 0
	for _, term := range terms {
		if m.index(Tokens(term)) >= 0 {
			n++
		}
	}
	return n
}

// Len is the number of tokens.
func (m Matcher) Len() int {
	return len(m.tokens)
}

func (m Matcher) index(needle []string) int {
	if len(needle) == 0 || len(needle) > len(m.tokens) {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(m.tokens); i++ {
		for j, tok := range needle {
			if m.tokens[i+j] != tok {
				continue outer
			}
		}
		return i
	}
	return -1
}

// Has is shorthand for New(text).Has(terms...).
func Has(text string, terms ...string) bool {
	return New(text).Has(terms...)
}

// Which is shorthand for New(text).Which(terms...).
func Which(text string, terms ...string) (string, bool) {
	return New(text).Which(terms...)
}
