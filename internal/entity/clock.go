package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// Time is a time of day found in free text, in 24-hour terms.
type Time struct {
	Hour         int    `json:"hour"`
	Minute       int    `json:"minute"`
	OriginalText string `json:"originalText"`
	// IsRelative is set for vague day parts such as "evening".
	IsRelative bool `json:"isRelative,omitempty"`
}

// Clock formats the time as HH:MM.
func (t Time) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Format12 formats the time on a 12-hour clock, e.g. "12:00 AM" or "9:05 PM".
func (t Time) Format12() string {
	suffix := "AM"
	if t.Hour >= 12 {
		suffix = "PM"
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, suffix)
}

var (
	clock12Pattern = regexp.MustCompile(`(?i)\b(\d{1,2})[:.](\d{2})\s*([ap])\.?\s?m\b\.?`)
	hour12Pattern  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*([ap])\.?\s?m\b\.?`)
	clock24Pattern = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	namedPattern   = regexp.MustCompile(`(?i)\b(noon|midday|midnight)\b`)
	dayPartPattern = regexp.MustCompile(`(?i)\b(morning|afternoon|evening|night)\b`)
	exact12Pattern = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})\s*([ap])\.?\s?m\.?\s*$`)
)

var dayParts = map[string]int{
	"morning":   9,
	"afternoon": 14,
	"evening":   18,
	"night":     20,
}

// ParseTime extracts the first time of day mentioned in text. It returns nil
// when nothing time-like is present.
func ParseTime(text string) *Time {
	for _, m := range clock12Pattern.FindAllStringSubmatch(text, -1) {
		if t, ok := from12(m[1], m[2], m[3]); ok {
			t.OriginalText = strings.TrimSpace(m[0])
			return &t
		}
	}
	for _, m := range hour12Pattern.FindAllStringSubmatch(text, -1) {
		if t, ok := from12(m[1], "00", m[2]); ok {
			t.OriginalText = strings.TrimSpace(m[0])
			return &t
		}
	}
	if m := clock24Pattern.FindStringSubmatch(text); m != nil {
		return &Time{Hour: atoi(m[1]), Minute: atoi(m[2]), OriginalText: m[0]}
	}
	if m := namedPattern.FindStringSubmatch(text); m != nil {
		hour := 12
		if strings.EqualFold(m[1], "midnight") {
			hour = 0
		}
		return &Time{Hour: hour, OriginalText: m[0]}
	}
	if m := dayPartPattern.FindStringSubmatch(text); m != nil {
		return &Time{Hour: dayParts[strings.ToLower(m[1])], OriginalText: m[0], IsRelative: true}
	}
	return nil
}

// ParseClock12 parses exactly one 12-hour clock reading such as "12:00 AM".
// It is the inverse of Time.Format12.
func ParseClock12(s string) (Time, error) {
	m := exact12Pattern.FindStringSubmatch(s)
	if m == nil {
		return Time{}, fmt.Errorf("entity: %q is not a 12-hour clock time", s)
	}
	t, ok := from12(m[1], m[2], m[3])
	if !ok {
		return Time{}, fmt.Errorf("entity: %q is out of range", s)
	}
	t.OriginalText = strings.TrimSpace(s)
	return t, nil
}

// from12 converts a 12-hour reading: 12 AM is hour 0 and 12 PM is hour 12.
func from12(hourText, minuteText, meridiem string) (Time, bool) {
	hour, minute := atoi(hourText), atoi(minuteText)
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return Time{}, false
	}
	pm := strings.EqualFold(meridiem, "p")
	switch {
	case hour == 12 && !pm:
		hour = 0
	case hour != 12 && pm:
		hour += 12
	}
	return Time{Hour: hour, Minute: minute}, true
}
