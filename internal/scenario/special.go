package scenario

import (
	"fmt"
	"strings"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/entity"
	"github.com/csheth/templeops/internal/keywords"
	"github.com/csheth/templeops/internal/lookup"
	"github.com/csheth/templeops/internal/parser"
	"github.com/csheth/templeops/internal/planner"
)

const dateLayout = "Monday, 2 January 2006"

// Special tries the structured handlers in order: VIP visit, spiritual
// leader visit, ritual planning and festival progress.
func Special(req Request) *Reply {
	for _, handle := range []func(Request) *Reply{vipVisit, leaderVisit, ritualPlan, festivalProgress} {
		if reply := handle(req); reply != nil {
			return reply
		}
	}
	return nil
}

// vipVisit leaves spiritual leaders to leaderVisit, whose arrangements differ.
func vipVisit(req Request) *Reply {
	if keywords.Has(req.Query, leaderTerms...) {
		return nil
	}
	res := parser.ParseQuery(req.Query, req.Now)
	visit, ok := res.Visit()
	if !ok {
		return nil
	}
	who := strings.TrimSpace(visit.Title + " " + visit.Visitor)
	actions := planner.VIPActions(visit.ProtocolLevel)
	card := canvas.Card{
		Heading: who,
		Fields: []canvas.Field{
			{Label: "Date", Value: visit.Date.Format(dateLayout)},
			{Label: "Time", Value: visit.Time},
			{Label: "Location", Value: visit.Location},
			{Label: "Protocol", Value: string(visit.ProtocolLevel)},
			{Label: "Confidence", Value: fmt.Sprintf("%.0f%%", res.Confidence*100)},
		},
		Highlights:      protocolHighlights[visit.ProtocolLevel],
		Recommendations: []string{"Where is the VIP parking", "Show the duty roster"},
	}
	text := fmt.Sprintf("I've prepared a briefing for the visit of %s on %s at %s (%s protocol). %d actions were added to your planner.",
		who, visit.Date.Format(dateLayout), visit.Time, visit.ProtocolLevel, len(actions))
	return &Reply{
		Handler: "vip-visit",
		Text:    text,
		Focus:   []canvas.Section{canvas.NewFocus("VIP Visit Briefing", who, canvas.CardBody{Card: card})},
		Planner: actions,
		Visit:   &visit,
	}
}

var protocolHighlights = map[parser.ProtocolLevel][]string{
	parser.ProtocolMaximum: {
		"Maximum protocol: state protocol officers lead security",
		"Restrict general darshan during the visit window",
	},
	parser.ProtocolHigh: {
		"High protocol: coordinate with local police",
	},
	parser.ProtocolStandard: {
		"Standard protocol: a temple liaison receives the visitor",
	},
}

var (
	leaderTerms = []string{"swamiji", "swami", "jagadguru", "acharya", "acharyaji", "guruji", "mahant", "pontiff", "peethadhipati", "mathadhipati"}
	visitTerms  = []string{"visit", "visiting", "visits", "coming", "arriving", "arrive", "arrives", "adhoc", "ad hoc"}
)

func leaderVisit(req Request) *Reply {
	words := keywords.New(req.Query)
	term, ok := words.Which(leaderTerms...)
	if !ok || !words.Has(visitTerms...) {
		return nil
	}
	leader := planner.Capitalize(term)
	if p := entity.ParsePerson(req.Query); p != nil {
		leader = strings.TrimSpace(p.Title + " " + p.Name)
	}
	when := "Not specified, treat as arriving today"
	if d := entity.ParseDate(req.Query, req.Now); d != nil {
		when = d.Value.Format(dateLayout)
		if t := entity.ParseTime(req.Query); t != nil {
			when += " at " + t.Clock()
		}
	}
	card := canvas.Card{
		Heading: leader,
		Fields:  []canvas.Field{{Label: "When", Value: when}, {Label: "Reception", Value: "Main entrance, purnakumbha swagatam"}},
		Highlights: []string{
			"Inform the head priest and the executive officer immediately",
			"Keep the guest house and puja room ready",
			"Arrange bhiksha with the kitchen",
		},
		Recommendations: []string{"Show today's kitchen menu", "Show the duty roster"},
	}
	actions := planner.LeaderVisitActions(leader)
	return &Reply{
		Handler: "leader-visit",
		Text:    fmt.Sprintf("An adhoc visit by %s needs immediate arrangements. I've listed them and added %d actions to your planner.", leader, len(actions)),
		Focus:   []canvas.Section{canvas.NewFocus("Adhoc Visit", leader, canvas.CardBody{Card: card})},
		Planner: actions,
	}
}

var (
	ritualTerms   = []string{"yaga", "yagna", "yajna", "homa", "havan", "ritual", "puja", "pooja", "abhishekam", "abhisheka"}
	planningTerms = []string{"plan", "organize", "organise", "arrange", "conduct", "prepare", "perform", "schedule"}
	ritualFiller  = map[string]bool{
		"a": true, "an": true, "the": true, "our": true, "big": true, "grand": true, "special": true, "for": true,
		"to": true, "me": true, "us": true, "help": true, "please": true, "lets": true, "need": true, "we": true, "i": true,
		"add": true,
	}
)

func ritualPlan(req Request) *Reply {
	words := keywords.New(req.Query)
	if !words.Has(ritualTerms...) || !words.Has(planningTerms...) || isAddRequest(req.Query) {
		return nil
	}
	ritual := ritualName(req.Query)
	var when string
	if d := entity.ParseDate(req.Query, req.Now); d != nil {
		when = " on " + d.Value.Format(dateLayout)
	}
	actions := planner.RitualActions(ritual)
	return &Reply{
		Handler: "ritual-plan",
		Text:    fmt.Sprintf("Here is a running order for the %s%s. I've added %d preparation actions to your planner.", ritual, when, len(actions)),
		Focus:   []canvas.Section{canvas.NewFocus("Ritual Plan", ritual, canvas.StepsBody{Steps: planner.RitualSteps(ritual)})},
		Planner: actions,
	}
}

// ritualName keeps up to two words in front of the ritual word, so "plan a
// chandi homa" yields "Chandi Homa".
func ritualName(query string) string {
	tokens := keywords.Tokens(query)
	for i, tok := range tokens {
		if !isRitualTerm(tok) {
			continue
		}
		start := i
		for start > 0 && i-start < 2 {
			prev := tokens[start-1]
			if ritualFiller[prev] || isPlanningTerm(prev) {
				break
			}
			start--
		}
		return titleWords(tokens[start : i+1])
	}
	return "Ritual"
}

func isRitualTerm(tok string) bool {
	for _, t := range ritualTerms {
		if t == tok {
			return true
		}
	}
	return false
}

func isPlanningTerm(tok string) bool {
	for _, t := range planningTerms {
		if t == tok {
			return true
		}
	}
	return false
}

var progressTerms = []string{"progress", "status", "preparation", "preparations", "ready", "readiness", "update", "going", "how"}

func festivalProgress(req Request) *Reply {
	words := keywords.New(req.Query)
	if !words.Has(progressTerms...) {
		return nil
	}
	fest, ok := lookup.FestivalFor(req.Query)
	if !ok {
		return nil
	}
	card := canvas.Card{
		Heading:         fmt.Sprintf("%s readiness: %d%%", fest.Name, fest.Readiness()),
		Fields:          []canvas.Field{{Label: "Dates", Value: fest.Dates}},
		Recommendations: []string{"Show pending approvals", "Do we have flower stock"},
	}
	lagging := 0
	for _, w := range fest.Workstreams {
		card.Highlights = append(card.Highlights, fmt.Sprintf("%s (%s): %d%%", w.Name, w.Owner, w.Percent))
		if w.Percent < 50 {
			lagging++
		}
	}
	actions := planner.FestivalActions(fest.Name)
	return &Reply{
		Handler: "festival-progress",
		Text:    fmt.Sprintf("%s is %d%% ready with %d workstream(s) below half. I've added %d follow-ups to your planner.", fest.Name, fest.Readiness(), lagging, len(actions)),
		Focus:   []canvas.Section{canvas.NewFocus("Festival Progress", fest.Name, canvas.CardBody{Card: card})},
		Planner: actions,
	}
}

func titleWords(tokens []string) string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = planner.Capitalize(t)
	}
	return strings.Join(out, " ")
}
