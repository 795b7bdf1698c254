package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount is a sum of money found in free text.
type Amount struct {
	Value        float64 `json:"value"`
	Currency     string  `json:"currency"`
	OriginalText string  `json:"originalText"`
}

const (
	numberPattern     = `(\d[\d,]*(?:\.\d+)?)`
	multiplierPattern = `(k|thousand|lakhs?|lacs?|crores?|cr|million|mn)`
)

var (
	prefixedAmountPattern = regexp.MustCompile(`(?i)(₹|\brs\b\.?|\binr\b|\$|\busd\b)\s*` + numberPattern + `(?:\s*` + multiplierPattern + `\b)?`)
	scaledAmountPattern   = regexp.MustCompile(`(?i)\b` + numberPattern + `\s*` + multiplierPattern + `\b`)
	suffixedAmountPattern = regexp.MustCompile(`(?i)\b` + numberPattern + `\s*(rupees|rs|inr|dollars|usd)\b`)
	keywordAmountPattern  = regexp.MustCompile(`(?i)\b(?:budget|amount|cost|expense|payment|donation|total)\s+(?:of\s+|is\s+|:\s*)?` + numberPattern + `\b`)
)

// ParseAmount extracts the first sum of money in text, or nil. Suffix
// multipliers scale the number: k and thousand by 1e3, lakh by 1e5, crore by
// 1e7, million by 1e6.
func ParseAmount(text string) *Amount {
	if m := prefixedAmountPattern.FindStringSubmatch(text); m != nil {
		if v, ok := scale(m[2], m[3]); ok {
			return &Amount{Value: v, Currency: currencyOf(m[1]), OriginalText: strings.TrimSpace(m[0])}
		}
	}
	if m := scaledAmountPattern.FindStringSubmatch(text); m != nil {
		if v, ok := scale(m[1], m[2]); ok {
			return &Amount{Value: v, Currency: "INR", OriginalText: m[0]}
		}
	}
	if m := suffixedAmountPattern.FindStringSubmatch(text); m != nil {
		if v, ok := scale(m[1], ""); ok {
			return &Amount{Value: v, Currency: currencyOf(m[2]), OriginalText: m[0]}
		}
	}
	if m := keywordAmountPattern.FindStringSubmatch(text); m != nil {
		if v, ok := scale(m[1], ""); ok {
			return &Amount{Value: v, Currency: "INR", OriginalText: m[0]}
		}
	}
	return nil
}

func scale(number, multiplier string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(number, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch m := strings.ToLower(multiplier); {
	case m == "":
	case m == "k" || m == "thousand":
		v *= 1e3
	case strings.HasPrefix(m, "lakh") || strings.HasPrefix(m, "lac"):
		v *= 1e5
	case strings.HasPrefix(m, "cr"):
		v *= 1e7
	case m == "million" || m == "mn":
		v *= 1e6
	}
	return v, true
}

func currencyOf(symbol string) string {
	switch strings.ToLower(strings.TrimSuffix(symbol, ".")) {
	case "$", "usd", "dollars":
		return "USD"
	default:
		return "INR"
	}
}
