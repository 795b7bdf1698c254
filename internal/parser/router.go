// Package parser turns a detected intent into structured data. ParseQuery is
// the entry point; specialised parsers exist per intent.
package parser

import (
	"fmt"
	"math"
	"time"

	"github.com/csheth/templeops/internal/intent"
)

// Payload is the structured data produced for one intent.
type Payload interface {
	Intent() intent.Kind
}

// ErrorKind classifies a router failure.
type ErrorKind string

const (
	ErrParseFailure    ErrorKind = "parse_failure"
	ErrUnhandledIntent ErrorKind = "unhandled_intent"
	ErrNoIntent        ErrorKind = "no_intent"
)

// Error is a non-fatal router failure reported alongside a Result.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e Error) Error() string { return e.Message }

// Result is the router's answer for one query.
type Result struct {
	Intent      intent.Kind `json:"intent"`
	Confidence  float64     `json:"confidence"`
	Data        Payload     `json:"data,omitempty"`
	Errors      []Error     `json:"errors,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

// minParsedConfidence is the floor once a parser produced data.
const minParsedConfidence = 0.7

var examples = map[intent.Kind]string{
	intent.VIPVisit:    `Tomorrow 9 AM, Minister Sharma is visiting the main temple`,
	intent.Appointment: `Schedule a meeting with the head priest on Friday at 11 AM`,
	intent.Task:        `Assign the gopuram cleaning task to the maintenance team by Monday`,
	intent.Approval:    `Show pending approvals for the annadanam budget`,
	intent.Finance:     `Allocate ₹2 lakh for the Navaratri flower decoration`,
	intent.Event:       `Plan the Rathotsava procession next week`,
	intent.Planner:     `Add confirm priest roster to plan`,
}

// ParseQuery detects the intent of query and, where a parser exists, extracts
// its data. It never fails; problems are reported in Result.Errors.
func ParseQuery(query string, now time.Time) Result {
	detected := intent.Detect(query)
	res := Result{Intent: detected.Kind}

	switch detected.Kind {
	case intent.Unknown:
		res.Errors = []Error{{Kind: ErrNoIntent, Message: "Could not understand the request"}}
		res.Suggestions = []string{
			examples[intent.VIPVisit],
			examples[intent.Planner],
			"Do we have flower stock?",
		}
	case intent.VIPVisit:
		if visit := ParseVIPVisit(query, now); visit != nil {
			res.Data = *visit
		} else {
			res.Errors = []Error{{Kind: ErrParseFailure, Message: "Could not extract the visitor, date and time of the visit"}}
			res.Suggestions = []string{"Try: " + examples[intent.VIPVisit]}
		}
	default:
		res.Errors = []Error{{
			Kind:    ErrUnhandledIntent,
			Message: fmt.Sprintf("%s queries are not yet implemented", detected.Kind),
		}}
		res.Suggestions = []string{"Try: " + examples[detected.Kind]}
	}

	if res.Data != nil {
		res.Confidence = math.Max(detected.Confidence, minParsedConfidence)
	} else {
		res.Confidence = detected.Confidence / 2
	}
	return res
}

// Visit returns the parsed visit, if the result carries one.
func (r Result) Visit() (VIPVisit, bool) {
	v, ok := r.Data.(VIPVisit)
	return v, ok
}
