package planner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/csheth/templeops/internal/keywords"
	"github.com/csheth/templeops/internal/parser"
)

var standardVIPActions = []string{
	"Confirm arrival time and entry gate with the visitor's office",
	"Assign a temple liaison to receive the visitor",
	"Reserve a darshan slot and prepare prasadam",
	"Brief the security desk on the visit schedule",
	"Prepare a short note on temple history and current sevas",
}

var highVIPActions = []string{
	"Coordinate traffic and parking with local police",
	"Arrange purnakumbha reception at the main gate",
}

var maximumVIPActions = []string{
	"Coordinate with state protocol and close-protection officers",
	"Keep a medical team and ambulance on standby",
	"Complete a security sweep of the premises 24 hours ahead",
}

// VIPActions returns the visit checklist for a protocol level: ten actions
// for maximum, seven for high and five for standard.
func VIPActions(level parser.ProtocolLevel) []string {
	out := append([]string(nil), standardVIPActions...)
	switch level {
	case parser.ProtocolMaximum:
		out = append(out, highVIPActions...)
		out = append(out, maximumVIPActions...)
	case parser.ProtocolHigh:
		out = append(out, highVIPActions...)
	}
	return out
}

// LeaderVisitActions is the checklist for an unscheduled visit by a
// spiritual leader.
func LeaderVisitActions(leader string) []string {
	leader = orDefault(leader, "the visiting acharya")
	return []string{
		fmt.Sprintf("Prepare the guest house and a private puja room for %s", leader),
		"Arrange purnakumbha swagatam at the main entrance",
		"Inform the head priest and schedule the paada puja",
		"Set aside a seating area for devotees seeking blessings",
		"Coordinate bhiksha timings with the kitchen",
	}
}

// RitualActions is the preparation checklist for a ritual or yaga.
func RitualActions(ritual string) []string {
	ritual = orDefault(ritual, "the ritual")
	return []string{
		fmt.Sprintf("Fix the muhurtha for %s with the head priest", ritual),
		"Book ritviks and confirm their travel and stay",
		"Procure homa dravyas: ghee, samidha, navadhanya and silk vastra",
		"Prepare the yagashala and fire safety arrangements",
		"Plan annadanam for participating devotees",
		fmt.Sprintf("Publish the %s schedule on the notice board", ritual),
	}
}

// RitualSteps is the running order shown on a ritual plan card.
func RitualSteps(ritual string) []string {
	return []string{
		"Sankalpa by the yajamana",
		"Ganapati puja and punyahavachana",
		fmt.Sprintf("Main %s with ritviks", orDefault(ritual, "homa")),
		"Purnahuti",
		"Maha mangalarati and prasada vitarane",
	}
}

// FestivalActions are the follow-ups after a festival progress review.
func FestivalActions(festival string) []string {
	festival = orDefault(festival, "the festival")
	return []string{
		fmt.Sprintf("Review lagging %s workstreams with department heads", festival),
		fmt.Sprintf("Confirm decoration and flower orders for %s", festival),
		fmt.Sprintf("Publish the %s seva schedule for devotees", festival),
	}
}

type followUpRule struct {
	terms   []string
	actions []string
}

var followUpRules = []followUpRule{
	{
		terms:   []string{"kitchen", "menu", "prasadam", "prasad", "annadanam", "meal", "meals", "lunch", "dinner", "breakfast"},
		actions: []string{"Confirm prasadam quantities with the kitchen supervisor", "Check grocery stock for the next three days"},
	},
	{
		terms:   []string{"festival", "festivals", "navaratri", "deepavali", "diwali", "shivaratri", "rathotsava", "utsava"},
		actions: []string{"Review festival readiness with department heads"},
	},
	{
		terms:   []string{"event", "events", "ritual", "rituals", "puja", "homa", "yaga", "abhishekam"},
		actions: []string{"Confirm priest assignments for upcoming rituals"},
	},
	{
		terms:   []string{"parking", "hall", "gate", "shrine", "location", "locations", "where", "goshala"},
		actions: []string{"Verify access and cleanliness of the listed locations"},
	},
	{
		terms:   []string{"staff", "volunteer", "volunteers", "priest", "priests", "roster"},
		actions: []string{"Share the duty roster with volunteers"},
	},
}

const maxFollowUps = 3

// FollowUps suggests one to three planner actions for an information query.
func FollowUps(query string) []string {
	words := keywords.New(query)
	var out []string
	for _, rule := range followUpRules {
		if !words.Has(rule.terms...) {
			continue
		}
		for _, a := range rule.actions {
			if len(out) == maxFollowUps {
				return out
			}
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		out = append(out, "Review the information with the concerned department")
	}
	return out
}

var (
	numberedMarker    = regexp.MustCompile(`(?:^|\s)\d+[.)]\s+`)
	bulletMarker      = regexp.MustCompile(`(?:^|\s)[-*•]\s+`)
	conjunctionMarker = regexp.MustCompile(`(?i)\s+(?:and then|and|then|also)\s+`)
	leadingFiller     = regexp.MustCompile(`(?i)^(?:please|kindly|and|then|also|i need to|we need to|need to|i have to|we have to|i want to|we should|i should|plan to|remember to|make sure to|make sure|let'?s|to)\s+`)
)

// SplitRequest breaks a free-form planning request into separate actions. It
// prefers a numbered list, then bullets, then commas, then conjunctions.
func SplitRequest(text string) []string {
	text = strings.TrimSpace(text)
	var parts []string
	switch {
	case len(numberedMarker.FindAllStringIndex(text, -1)) >= 2:
		parts = splitOnMarkers(numberedMarker, text)
	case len(bulletMarker.FindAllStringIndex(text, -1)) >= 2:
		parts = splitOnMarkers(bulletMarker, text)
	case strings.Contains(text, ","):
		for _, p := range strings.Split(text, ",") {
			parts = append(parts, conjunctionMarker.Split(p, -1)...)
		}
	default:
		parts = conjunctionMarker.Split(text, -1)
	}
	var actions []string
	for _, p := range parts {
		if a := cleanAction(p); a != "" {
			actions = append(actions, a)
		}
	}
	return actions
}

func splitOnMarkers(marker *regexp.Regexp, text string) []string {
	var parts []string
	locs := marker.FindAllStringIndex(text, -1)
	if head := text[:locs[0][0]]; strings.TrimSpace(head) != "" {
		parts = append(parts, head)
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		parts = append(parts, text[loc[1]:end])
	}
	return parts
}

func cleanAction(s string) string {
	s = strings.Trim(strings.TrimSpace(s), ".;:!?-")
	for {
		stripped := leadingFiller.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = strings.TrimSpace(stripped)
	}
	return Capitalize(strings.TrimSpace(s))
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
