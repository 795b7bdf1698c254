package parser

import (
	"math"
	"time"

	"github.com/csheth/templeops/internal/entity"
	"github.com/csheth/templeops/internal/intent"
	"github.com/csheth/templeops/internal/keywords"
)

// ProtocolLevel is how much ceremony and security a visit requires.
type ProtocolLevel string

const (
	ProtocolStandard ProtocolLevel = "standard"
	ProtocolHigh     ProtocolLevel = "high"
	ProtocolMaximum  ProtocolLevel = "maximum"
)

// VIPVisit is a fully specified dignitary visit.
type VIPVisit struct {
	Visitor       string        `json:"visitor"`
	Title         string        `json:"title,omitempty"`
	Date          time.Time     `json:"date"`
	Time          string        `json:"time"`
	Location      string        `json:"location,omitempty"`
	ProtocolLevel ProtocolLevel `json:"protocolLevel"`
	Confidence    float64       `json:"confidence"`
}

// Intent implements Payload.
func (VIPVisit) Intent() intent.Kind { return intent.VIPVisit }

// ParseVIPVisit builds a visit from text. A person, a date and a time are all
// required; without any one of them it returns nil. The location is optional.
func ParseVIPVisit(text string, now time.Time) *VIPVisit {
	person := entity.ParsePerson(text)
	date := entity.ParseDate(text, now)
	clock := entity.ParseTime(text)
	if person == nil || date == nil || clock == nil {
		return nil
	}
	visit := &VIPVisit{
		Visitor:       person.Name,
		Title:         person.Title,
		Date:          date.Value,
		Time:          clock.Clock(),
		ProtocolLevel: ProtocolFor(person.Title),
	}
	if place := entity.ParseLocation(text); place != nil {
		visit.Location = place.Name
	}
	visit.Confidence = visitConfidence(visit)
	return visit
}

// ProtocolFor maps a person's title to a protocol level.
func ProtocolFor(title string) ProtocolLevel {
	words := keywords.New(title)
	switch {
	case words.Has("president", "governor", "prime minister"):
		return ProtocolMaximum
	case words.Has("minister", "judge", "justice"):
		return ProtocolHigh
	default:
		return ProtocolStandard
	}
}

func visitConfidence(v *VIPVisit) float64 {
	c := 0.5
	if v.Visitor != "" {
		c += 0.2
	}
	if v.Title != "" {
		c += 0.1
	}
	if !v.Date.IsZero() {
		c += 0.1
	}
	if v.Time != "" {
		c += 0.05
	}
	if v.Location != "" {
		c += 0.05
	}
	return math.Min(c, 1)
}
