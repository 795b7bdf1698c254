package entity

import (
	"regexp"
	"strings"
	"unicode"
)

// Person is a named individual, optionally with an honorific or office.
type Person struct {
	Name         string `json:"name"`
	Title        string `json:"title,omitempty"`
	OriginalText string `json:"originalText"`
}

const maxNameWords = 4

// Longer titles come first so "Prime Minister" wins over "Minister".
var titlePattern = regexp.MustCompile(`(?i)\b(deputy\s+chief\s+minister|prime\s+minister|chief\s+minister|union\s+minister|chief\s+justice|vice\s+president|president|governor|minister|justice|judge|ambassador|collector|commissioner|mla|mp|ceo|dr|mr|mrs|ms|shri|smt|sri)\b\.?\s+`)

var (
	visitingPattern = regexp.MustCompile(`(?i)\b((?:[a-z][a-z.'\-]*\s+){0,3}[a-z][a-z.'\-]*)\s+(?:is\s+|will\s+be\s+)?(?:visiting|coming|arriving)\b|\b((?:[a-z][a-z.'\-]*\s+){0,3}[a-z][a-z.'\-]*)\s+will\s+visit\b`)
	visitOfPattern  = regexp.MustCompile(`(?i)\bvisit\s+(?:of|by)\s+`)
)

var upperTitles = map[string]string{"mla": "MLA", "mp": "MP", "ceo": "CEO"}

// ParsePerson extracts the first person mentioned in text, or nil.
func ParsePerson(text string) *Person {
	for _, loc := range titlePattern.FindAllStringSubmatchIndex(text, -1) {
		title := text[loc[2]:loc[3]]
		rest := text[loc[1]:]
		if words := leadingWords(rest, maxNameWords); len(words) > 0 {
			name := strings.Join(words, " ")
			return &Person{
				Name:         titleCase(name),
				Title:        canonicalTitle(title),
				OriginalText: strings.TrimSpace(text[loc[0]:loc[1]]) + " " + name,
			}
		}
	}
	for _, m := range visitingPattern.FindAllStringSubmatch(text, -1) {
		captured := m[1]
		if captured == "" {
			captured = m[2]
		}
		if words := trailingWords(captured); len(words) > 0 {
			name := strings.Join(words, " ")
			return &Person{Name: titleCase(name), OriginalText: strings.TrimSpace(m[0])}
		}
	}
	for _, loc := range visitOfPattern.FindAllStringIndex(text, -1) {
		if words := leadingWords(text[loc[1]:], maxNameWords); len(words) > 0 {
			name := strings.Join(words, " ")
			return &Person{Name: titleCase(name), OriginalText: strings.TrimSpace(text[loc[0]:loc[1]]) + " " + name}
		}
	}
	return nil
}

// leadingWords collects up to limit name-like words from the start of s. It
// stops at stop words, numbers and punctuation. A word carrying trailing
// punctuation is kept but ends the run.
func leadingWords(s string, limit int) []string {
	var words []string
	for _, field := range strings.Fields(s) {
		if len(words) == limit {
			break
		}
		word := strings.TrimRight(field, ",;:!?.)\"")
		ended := word != field
		word = strings.TrimSuffix(word, "'s")
		if !isNameWord(word) {
			break
		}
		words = append(words, word)
		if ended {
			break
		}
	}
	return words
}

// trailingWords keeps the name-like words at the end of a captured run,
// walking back from the verb until a stop word.
func trailingWords(s string) []string {
	fields := strings.Fields(s)
	for len(fields) > 0 && isAuxiliary(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	start := len(fields)
	for start > 0 && isNameWord(fields[start-1]) {
		start--
	}
	return fields[start:]
}

func isNameWord(word string) bool {
	if word == "" {
		return false
	}
	first := []rune(word)[0]
	if !unicode.IsLetter(first) {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && r != '.' && r != '-' && r != '\'' {
			return false
		}
	}
	return !stopWords[strings.ToLower(strings.TrimRight(word, "."))]
}

func isAuxiliary(word string) bool {
	switch strings.ToLower(word) {
	case "is", "are", "will", "be", "was":
		return true
	}
	return false
}

// stopWords end a name or place run.
var stopWords = newWordSet(
	"a", "an", "the", "and", "or", "to", "at", "in", "on", "of", "for", "by", "with", "from", "about",
	"is", "are", "was", "will", "would", "be", "has", "have", "should", "can",
	"visit", "visits", "visiting", "coming", "arriving", "arrive", "arrives", "reaching", "come",
	"today", "tomorrow", "tonight", "yesterday", "now", "next", "this", "coming", "week", "month", "day", "after",
	"morning", "afternoon", "evening", "night", "noon", "midnight", "am", "pm",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
	"who", "what", "which", "when", "where", "why", "how", "someone", "anyone", "nobody", "somebody",
	"i", "we", "you", "he", "she", "they", "it", "our", "my", "their", "his", "her",
	"please", "sir", "ji", "temple", "vip", "vvip",
	"minister", "president", "governor", "judge", "dignitary", "delegation", "guest", "guests",
	"official", "officials", "team", "devotees",
)

func newWordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func canonicalTitle(title string) string {
	title = strings.Join(strings.Fields(strings.ToLower(title)), " ")
	if upper, ok := upperTitles[title]; ok {
		return upper
	}
	return titleCase(title)
}

// titleCase upper-cases the first letter of each word and lowers the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			if runes[j-1] == '-' || runes[j-1] == '.' {
				runes[j] = unicode.ToUpper(runes[j])
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
