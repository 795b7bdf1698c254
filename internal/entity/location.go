package entity

import (
	"regexp"
	"strings"
)

// Location is a place named in free text.
type Location struct {
	Name         string `json:"name"`
	OriginalText string `json:"originalText"`
}

var locationRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bvisiting\s+(?:the\s+)?`),
	regexp.MustCompile(`(?i)\b(?:arriving|arrive|arrives|reaching)\s+(?:at|in)\s+(?:the\s+)?|\bcoming\s+to\s+(?:the\s+)?`),
	regexp.MustCompile(`(?i)\b(?:at|in)\s+(?:the\s+)?`),
}

// placeStopWords is stopWords without the nouns that commonly end a place name.
var placeStopWords = func() map[string]bool {
	set := make(map[string]bool, len(stopWords))
	for w := range stopWords {
		set[w] = true
	}
	for _, keep := range []string{"temple", "hall", "guest", "guests"} {
		delete(set, keep)
	}
	return set
}()

// ParseLocation extracts the first place mentioned in text, or nil.
func ParseLocation(text string) *Location {
	for _, rule := range locationRules {
		for _, loc := range rule.FindAllStringIndex(text, -1) {
			words := placeWords(text[loc[1]:])
			if len(words) == 0 {
				continue
			}
			name := strings.Join(words, " ")
			return &Location{
				Name:         titleCase(name),
				OriginalText: strings.TrimSpace(text[loc[0]:loc[1]]) + " " + name,
			}
		}
	}
	return nil
}

func placeWords(s string) []string {
	var words []string
	for _, field := range strings.Fields(s) {
		if len(words) == maxNameWords {
			break
		}
		word := strings.TrimRight(field, ",;:!?.)\"")
		ended := word != field
		if !isPlaceWord(word) {
			break
		}
		words = append(words, word)
		if ended {
			break
		}
	}
	return words
}

func isPlaceWord(word string) bool {
	if word == "" {
		return false
	}
	for i, r := range word {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x7f
		if i == 0 && !letter {
			return false
		}
		if !letter && r != '-' && r != '\'' {
			return false
		}
	}
	return !placeStopWords[strings.ToLower(word)]
}
