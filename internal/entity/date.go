package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day found in free text. Value is midnight in the
// location of the reference time it was resolved against.
type Date struct {
	Value        time.Time `json:"value"`
	OriginalText string    `json:"originalText"`
	IsRelative   bool      `json:"isRelative,omitempty"`
}

const (
	monthPattern   = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	ordinalPattern = `(?:st|nd|rd|th)?`
	weekdayPattern = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
}

type dateRule struct {
	pattern  *regexp.Regexp
	relative bool
	build    func(m []string, now time.Time) (time.Time, bool)
}

// Rules run strictest first; the first one that yields a real calendar date wins.
var dateRules = []dateRule{
	{
		pattern: regexp.MustCompile(`(?i)\b(\d{1,2})` + ordinalPattern + `\s+(?:of\s+)?` + monthPattern + `\.?,?\s+(\d{4})\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			return makeDate(atoi(m[3]), monthOf(m[2]), atoi(m[1]), now.Location())
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b` + monthPattern + `\.?\s+(\d{1,2})` + ordinalPattern + `,?\s+(\d{4})\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			return makeDate(atoi(m[3]), monthOf(m[1]), atoi(m[2]), now.Location())
		},
	},
	{
		pattern: regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			return makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]), now.Location())
		},
	},
	{
		// Day first, as written on temple circulars.
		pattern: regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			return makeDate(atoi(m[3]), time.Month(atoi(m[2])), atoi(m[1]), now.Location())
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(\d{1,2})` + ordinalPattern + `\s+(?:of\s+)?` + monthPattern + `\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			return upcoming(monthOf(m[2]), atoi(m[1]), now)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b` + monthPattern + `\.?\s+(\d{1,2})` + ordinalPattern + `\b`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			return upcoming(monthOf(m[1]), atoi(m[2]), now)
		},
	},
	{
		pattern:  regexp.MustCompile(`(?i)\bday\s+after\s+tomorrow\b`),
		relative: true,
		build:    offsetDays(2),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\btomorrow\b`),
		relative: true,
		build:    offsetDays(1),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(?:today|tonight)\b`),
		relative: true,
		build:    offsetDays(0),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\bnext\s+week\b`),
		relative: true,
		build:    offsetDays(7),
	},
	{
		pattern:  regexp.MustCompile(`(?i)\bin\s+(\d{1,3})\s+days?\b`),
		relative: true,
		build: func(m []string, now time.Time) (time.Time, bool) {
			return midnight(now).AddDate(0, 0, atoi(m[1])), true
		},
	},
	{
		pattern:  regexp.MustCompile(`(?i)\b(?:(?:next|this|coming|on)\s+)?` + weekdayPattern + `\b`),
		relative: true,
		build: func(m []string, now time.Time) (time.Time, bool) {
			target := weekdays[strings.ToLower(m[1])]
			diff := (int(target) - int(now.Weekday()) + 7) % 7
			if diff == 0 {
				diff = 7
			}
			return midnight(now).AddDate(0, 0, diff), true
		},
	},
}

// ParseDate extracts the first date mentioned in text, resolving relative
// phrases against now. It returns nil when nothing date-like is present.
func ParseDate(text string, now time.Time) *Date {
	for _, rule := range dateRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(text, -1) {
			value, ok := rule.build(m, now)
			if !ok {
				continue
			}
			return &Date{Value: value, OriginalText: strings.TrimSpace(m[0]), IsRelative: rule.relative}
		}
	}
	return nil
}

func makeDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// upcoming places month/day in the current year, or the next one when that
// day has already passed.
func upcoming(month time.Month, day int, now time.Time) (time.Time, bool) {
	t, ok := makeDate(now.Year(), month, day, now.Location())
	if !ok {
		// 29 February only exists in some years.
		return makeDate(now.Year()+1, month, day, now.Location())
	}
	if t.Before(midnight(now)) {
		if next, ok := makeDate(now.Year()+1, month, day, now.Location()); ok {
			return next, true
		}
	}
	return t, true
}

func offsetDays(n int) func([]string, time.Time) (time.Time, bool) {
	return func(_ []string, now time.Time) (time.Time, bool) {
		return midnight(now).AddDate(0, 0, n), true
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthOf(name string) time.Month {
	name = strings.ToLower(name)
	if len(name) > 3 {
		name = name[:3]
	}
	return months[name]
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
