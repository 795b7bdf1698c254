package docs

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/csheth/templeops/internal/entity"
	"github.com/csheth/templeops/internal/keywords"
	"github.com/csheth/templeops/internal/planner"
)

// Summary is the digest shown for an uploaded document.
type Summary struct {
	Title   string
	Points  []string
	Dates   []string
	Amounts []string
	Actions []string
	Words   int
}

const maxActions = 3

var (
	paragraphSplit   = regexp.MustCompile(`\n\s*\n`)
	whitespaceSanity = regexp.MustCompile(`\s+`)
	obligation       = regexp.MustCompile(`(?i)\b(must|should|required|requested|kindly|please|ensure|deadline|no later than)\b`)
)

var keywordWeights = map[string]int{
	"approval": 3, "approved": 2, "budget": 3, "deadline": 3, "festival": 3, "utsava": 3,
	"devotees": 2, "seva": 2, "darshan": 2, "security": 2, "donation": 2, "donations": 2,
	"schedule": 2, "ritual": 2, "puja": 2, "homa": 2, "kitchen": 1, "prasadam": 1,
	"trust": 1, "board": 1, "committee": 1, "volunteers": 1, "must": 2, "required": 2,
}

// Summarize picks the n most informative sentences of text, in document
// order, and lists the dates, amounts and requests it mentions.
func Summarize(text string, n int) Summary {
	if n <= 0 {
		n = 3
	}
	paragraphs := cleanParagraphs(text)
	var out Summary
	if len(paragraphs) == 0 {
		return out
	}
	if title, ok := titleLine(paragraphs[0]); ok {
		out.Title = title
	}

	type scored struct {
		text  string
		score int
		idx   int
	}
	var sentences []scored
	seenDate := map[string]bool{}
	seenAmount := map[string]bool{}
	for _, p := range paragraphs {
		out.Words += len(strings.Fields(p))
		for _, sentence := range splitSentences(p) {
			if sentence == out.Title {
				continue
			}
			score := scoreSentence(sentence, len(sentences) == 0)
			if d := entity.ParseDate(sentence, time.Time{}); d != nil && !d.IsRelative {
				score += 2
				if !seenDate[d.OriginalText] {
					seenDate[d.OriginalText] = true
					out.Dates = append(out.Dates, d.OriginalText)
				}
			}
			if a := entity.ParseAmount(sentence); a != nil {
				score += 2
				if !seenAmount[a.OriginalText] {
					seenAmount[a.OriginalText] = true
					out.Amounts = append(out.Amounts, a.OriginalText)
				}
			}
			if obligation.MatchString(sentence) && len(out.Actions) < maxActions {
				out.Actions = append(out.Actions, planner.Capitalize(strings.TrimRight(sentence, ".!")))
			}
			sentences = append(sentences, scored{text: sentence, score: score, idx: len(sentences)})
		}
	}

	ranked := append([]scored(nil), sentences...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].idx < ranked[j].idx })
	for _, s := range ranked {
		out.Points = append(out.Points, s.text)
	}
	return out
}

// Render formats the summary as plain text.
func (s Summary) Render() string {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString(s.Title + "\n\n")
	}
	for _, p := range s.Points {
		b.WriteString("• " + p + "\n")
	}
	if len(s.Dates) > 0 {
		fmt.Fprintf(&b, "\nDates: %s\n", strings.Join(s.Dates, ", "))
	}
	if len(s.Amounts) > 0 {
		fmt.Fprintf(&b, "Amounts: %s\n", strings.Join(s.Amounts, ", "))
	}
	if len(s.Actions) > 0 {
		b.WriteString("\nRequested actions:\n")
		b.WriteString(planner.Format(planner.Normalize(s.Actions)) + "\n")
	}
	fmt.Fprintf(&b, "\n%d words", s.Words)
	return b.String()
}

// cleanParagraphs drops boilerplate and repeated paragraphs (running headers
// and footers repeat on every page).
func cleanParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	seen := map[string]bool{}
	var out []string
	for _, p := range paragraphSplit.Split(text, -1) {
		p = strings.TrimSpace(whitespaceSanity.ReplaceAllString(p, " "))
		if isBoilerplate(p) {
			continue
		}
		sum := sha1.Sum([]byte(strings.ToLower(p)))
		key := hex.EncodeToString(sum[:])
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

var pageMarker = regexp.MustCompile(`(?i)^(?:page\s+)?\d+(?:\s*(?:of|/)\s*\d+)?$`)

func isBoilerplate(p string) bool {
	lower := strings.ToLower(p)
	switch {
	case lower == "":
		return true
	case pageMarker.MatchString(lower):
		return true
	case strings.HasPrefix(lower, "copyright"), strings.Contains(lower, "all rights reserved"):
		return true
	case lower == "confidential", lower == "for internal circulation only":
		return true
	}
	letters := 0
	for _, r := range lower {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters*4 < utf8.RuneCountInString(lower)
}

// titleLine accepts a short first paragraph without terminal punctuation.
func titleLine(p string) (string, bool) {
	if utf8.RuneCountInString(p) > 80 || strings.ContainsAny(p[len(p)-1:], ".!?") {
		return "", false
	}
	return p, true
}

func scoreSentence(sentence string, first bool) int {
	words := keywords.New(sentence)
	score := 0
	for term, weight := range keywordWeights {
		if words.Has(term) {
			score += weight
		}
	}
	if first {
		score++
	}
	if len(sentence) < 40 {
		score--
	}
	return score
}

func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for idx, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := idx + utf8.RuneLen(r)
		if end < len(text) && !unicode.IsSpace(rune(text[end])) {
			continue
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
