// Package entity pulls dates, times, people, places and sums of money out of
// free text. Each extractor runs an ordered list of patterns, strictest
// first, and returns nil rather than an error when nothing matches.
package entity

import "time"

// Entities is everything the extractors found in one piece of text.
type Entities struct {
	Date     *Date     `json:"date,omitempty"`
	Time     *Time     `json:"time,omitempty"`
	Person   *Person   `json:"person,omitempty"`
	Location *Location `json:"location,omitempty"`
	Amount   *Amount   `json:"amount,omitempty"`
}

// ExtractAll runs every extractor independently over text.
func ExtractAll(text string, now time.Time) Entities {
	return Entities{
		Date:     ParseDate(text, now),
		Time:     ParseTime(text),
		Person:   ParsePerson(text),
		Location: ParseLocation(text),
		Amount:   ParseAmount(text),
	}
}
