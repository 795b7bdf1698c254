package scenario

import (
	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/keywords"
	"github.com/csheth/templeops/internal/parser"
	"github.com/csheth/templeops/internal/planner"
)

// Scenario is a prepared briefing for a well-known situation.
type Scenario struct {
	Key      string
	Triggers []string
	Title    string
	Reply    string
	Card     canvas.Card
	Actions  []string
}

// registry is shared by direct queries and recommendation clicks.
var registry = []Scenario{
	{
		Key:      "sringeri-jagadguru",
		Triggers: []string{"vidhushekhara bharati", "vidhushekhara", "sringeri jagadguru", "sringeri acharya"},
		Title:    "Jagadguru Visit",
		Reply:    "Jagadguru Sri Vidhushekhara Bharati Mahaswamiji's camp needs a three-day arrangement. The briefing and checklist are ready.",
		Card: canvas.Card{
			Heading: "Jagadguru Sri Vidhushekhara Bharati Mahaswamiji",
			Fields: []canvas.Field{
				{Label: "Stay", Value: "Three days, north guest house"},
				{Label: "Daily sevas", Value: "Chandramoulishwara puja at 7:30 PM, darshan 10:00 AM to 12:00 PM"},
				{Label: "Expected devotees", Value: "8,000 per day"},
			},
			Highlights: []string{
				"Purnakumbha swagatam with the Veda pathashala at the main gate",
				"Separate queue for paada puja sevakartas",
				"Anugraha bhashana on the second evening",
			},
			Recommendations: []string{"Show today's kitchen menu", "Where is the yagashala"},
		},
		Actions: []string{
			"Confirm camp dates with the Sringeri matha office",
			"Prepare the north guest house and a private puja room",
			"Arrange purnakumbha swagatam with the Veda pathashala",
			"Plan annadanam for 8,000 devotees per day",
			"Set up a separate paada puja queue",
		},
	},
	{
		Key:      "sahasra-chandi-yaga",
		Triggers: []string{"sahasra chandi yaga", "sahasra chandi", "chandi yaga"},
		Title:    "Sahasra Chandi Yaga",
		Reply:    "The Sahasra Chandi Yaga runs five days with 100 ritviks. Here is the plan and the preparation checklist.",
		Card: canvas.Card{
			Heading: "Sahasra Chandi Yaga",
			Fields: []canvas.Field{
				{Label: "Duration", Value: "5 days, purnahuti on the fifth morning"},
				{Label: "Ritviks", Value: "100"},
				{Label: "Venue", Value: "Yagashala, north prakara"},
				{Label: "Estimated cost", Value: "₹18 lakh"},
			},
			Highlights: []string{
				"1,000 Chandi parayanas across the first four days",
				"Kumari and suvasini puja before purnahuti",
			},
			Recommendations: []string{"Show pending approvals", "Do we have ghee"},
		},
		Actions: []string{
			"Fix the muhurtha with the head priest",
			"Book 100 ritviks and arrange their stay",
			"Procure 600 kg ghee and homa dravyas",
			"Seek approval for the ₹18 lakh budget",
			"Arrange fire safety at the yagashala",
		},
	},
	{
		Key:      "rajagopura-restoration",
		Triggers: []string{"rajagopura", "rajagopuram", "gopuram restoration", "restoration project", "restoration"},
		Title:    "Rajagopura Restoration",
		Reply:    "The rajagopura restoration is 45% complete and two weeks behind. Details and follow-ups are on the canvas.",
		Card: canvas.Card{
			Heading: "Rajagopura restoration",
			Fields: []canvas.Field{
				{Label: "Progress", Value: "45%"},
				{Label: "Contractor", Value: "Sri Lakshmi Shilpa Works"},
				{Label: "Budget", Value: "₹1.2 crore, ₹52 lakh spent"},
				{Label: "Target", Value: "Before Rathotsava"},
			},
			Highlights: []string{
				"Stucco work on tiers 3 and 4 is two weeks behind",
				"Archaeology department inspection pending",
			},
			Recommendations: []string{"Show today's appointments", "Show finance"},
		},
		Actions: []string{
			"Review the revised schedule with the contractor",
			"Request the archaeology department inspection",
			"Release the next payment after the tier 3 sign-off",
		},
	},
	{
		Key:      "sharan-navaratri",
		Triggers: []string{"sharan navaratri", "navaratri", "navratri", "dasara"},
		Title:    "Sharan Navaratri",
		Reply:    "Sharan Navaratri runs ten days with daily alankara and Chandi homa. Here's the festival overview.",
		Card: canvas.Card{
			Heading: "Sharan Navaratri",
			Fields: []canvas.Field{
				{Label: "Dates", Value: "3 to 12 October"},
				{Label: "Daily", Value: "Alankara, Chandi homa, cultural programme at 6:30 PM"},
				{Label: "Peak day", Value: "Vijayadashami, 40,000 devotees expected"},
			},
			Highlights: []string{
				"Flower decoration approval still pending",
				"Queue management needs 60 more volunteers",
			},
			Recommendations: []string{"Show pending approvals", "Do we have flower stock"},
		},
		Actions: []string{
			"Finalise the daily alankara schedule",
			"Recruit 60 queue volunteers",
			"Clear the flower decoration approval",
			"Plan Vijayadashami crowd control with police",
		},
	},
	{
		Key:      "ceo-briefing",
		Triggers: []string{"ceo", "executive officer", "daily briefing", "morning briefing"},
		Title:    "CEO Daily Briefing",
		Reply:    "Good morning. Here is today's briefing: 3 appointments, 4 pending approvals and 3 active alerts.",
		Card: canvas.Card{
			Heading: "Daily briefing",
			Fields: []canvas.Field{
				{Label: "Appointments", Value: "3, first at 10:00 with the trust board"},
				{Label: "Approvals", Value: "4 pending, ₹2.9 lakh in total"},
				{Label: "Alerts", Value: "3 active, main shrine queue above 45 minutes"},
				{Label: "Collections", Value: "Hundi ₹6.4 lakh yesterday"},
			},
			Recommendations: []string{"Show pending approvals", "Show alerts", "Show today's appointments"},
		},
		Actions: []string{
			"Clear the Navaratri flower decoration approval",
			"Review the main shrine queue with security",
			"Prepare notes for the trust board review",
		},
	},
	{
		Key:      "governor-visit",
		Triggers: []string{"governor", "vvip"},
		Title:    "Governor Visit",
		Reply:    "A VVIP visit by the Governor calls for maximum protocol. The briefing and the full checklist are ready.",
		Card: canvas.Card{
			Heading: "His Excellency the Governor",
			Fields: []canvas.Field{
				{Label: "Protocol", Value: string(parser.ProtocolMaximum)},
				{Label: "Entry", Value: "Gate 3, VIP parking off the river road"},
				{Label: "Darshan", Value: "Special darshan with the head priest, 20 minutes"},
			},
			Highlights: []string{
				"Raj Bhavan protocol officer is the single point of contact",
				"General queue paused for the visit window",
			},
			Recommendations: []string{"Where is the VIP parking", "Show the duty roster"},
		},
		Actions: planner.VIPActions(parser.ProtocolMaximum),
	},
}

// Lookup returns the first registered scenario triggered by query.
func Lookup(query string) (Scenario, bool) {
	words := keywords.New(query)
	for _, s := range registry {
		if words.Has(s.Triggers...) {
			return s, true
		}
	}
	return Scenario{}, false
}

// Named answers queries about registered scenarios.
func Named(req Request) *Reply {
	s, ok := Lookup(req.Query)
	if !ok {
		return nil
	}
	return &Reply{
		Handler: "named:" + s.Key,
		Text:    s.Reply,
		Focus:   []canvas.Section{canvas.NewFocus(s.Title, "", canvas.CardBody{Card: s.Card})},
		Planner: append([]string(nil), s.Actions...),
	}
}
