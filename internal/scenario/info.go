package scenario

import (
	"fmt"
	"strings"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/keywords"
	"github.com/csheth/templeops/internal/lookup"
	"github.com/csheth/templeops/internal/parser"
	"github.com/csheth/templeops/internal/planner"
)

var interrogativeTerms = []string{
	"show", "what", "whats", "who", "when", "where", "which", "list", "tell", "how", "status", "progress",
}

const noRecordsAnswer = "I couldn't find any records about that yet. Try asking about the kitchen menu, locations, upcoming events or the duty roster."

// Info answers questions from the lookup data and suggests follow-ups.
func Info(req Request) *Reply {
	flex := parser.ParseFlexible(req.Query)
	asked := keywords.Has(req.Query, interrogativeTerms...)
	if !asked && (flex == nil || (flex.Kind != parser.FlexibleKitchen && flex.Kind != parser.FlexibleProgress)) {
		return nil
	}
	records := lookup.Search(req.Query)
	if len(records) == 0 {
		return &Reply{Text: noRecordsAnswer}
	}

	var items, titles []string
	for _, r := range records {
		titles = append(titles, r.Title)
		items = append(items, r.Details...)
	}
	title := records[0].Title
	if len(records) > 1 {
		title = "Search results"
	}
	followUps := planner.FollowUps(req.Query)
	text := records[0].Summary() + "."
	if len(records) > 1 {
		text = fmt.Sprintf("I found %d matching records: %s.", len(records), strings.Join(titles, ", "))
	}
	return &Reply{
		Text:    text,
		Focus:   []canvas.Section{canvas.NewFocus(title, strings.Join(titles, " · "), canvas.ListBody{Items: items})},
		Planner: followUps,
	}
}
