package scenario

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/keywords"
)

var quickActionPattern = regexp.MustCompile(`(?i)^(?:please\s+)?(?:show|view|list|check|display|open)\s+(?:me\s+)?(?:the\s+|all\s+|my\s+)?(?:pending\s+|overdue\s+|today'?s\s+|recent\s+|latest\s+|upcoming\s+)?(alerts?|approvals?|appointments?|finances?|financials?)\b`)

type quickPanel struct {
	title string
	card  canvas.Card
	text  string
}

var quickPanels = map[string]quickPanel{
	"alerts": {
		title: "Active Alerts",
		card: canvas.Card{
			Heading: "3 active alerts",
			Highlights: []string{
				"Main shrine queue above 45 minutes",
				"Cold storage temperature rising in the stores",
				"Generator service due tomorrow",
			},
			Recommendations: []string{"Show the duty roster"},
		},
		text: "There are 3 active alerts. The main shrine queue needs attention first.",
	},
	"approvals": {
		title: "Pending Approvals",
		card: canvas.Card{
			Heading: "4 approvals waiting",
			Fields: []canvas.Field{
				{Label: "Navaratri flower decoration", Value: "₹1.2 lakh, with the executive officer"},
				{Label: "Yagashala roof repair", Value: "₹85,000, with the engineering head"},
				{Label: "Annadanam vegetables (weekly)", Value: "₹64,000, with accounts"},
				{Label: "Volunteer uniforms", Value: "₹22,500, with administration"},
			},
			Recommendations: []string{"Show finance"},
		},
		text: "You have 4 approvals pending. The Navaratri flower decoration is the largest at ₹1.2 lakh.",
	},
	"appointments": {
		title: "Today's Appointments",
		card: canvas.Card{
			Heading: "3 appointments today",
			Fields: []canvas.Field{
				{Label: "10:00", Value: "Trust board review, conference room"},
				{Label: "12:30", Value: "Donor meeting with the Rao family"},
				{Label: "16:00", Value: "Site visit, rajagopura scaffolding"},
			},
			Recommendations: []string{"Rajagopura restoration status"},
		},
		text: "You have 3 appointments today, starting with the trust board review at 10:00.",
	},
	"finance": {
		title: "Finance Snapshot",
		card: canvas.Card{
			Heading: "Finance snapshot",
			Fields: []canvas.Field{
				{Label: "Hundi collection (yesterday)", Value: "₹6.4 lakh"},
				{Label: "Annadanam donations (this week)", Value: "₹2.1 lakh"},
				{Label: "Pending vendor payments", Value: "₹3.8 lakh (4 overdue)"},
			},
			Recommendations: []string{"Show pending approvals"},
		},
		text: "Yesterday's hundi collection was ₹6.4 lakh. ₹3.8 lakh in vendor payments is pending, 4 of them overdue.",
	},
}

var overdueActions = []string{
	"Follow up on overdue vendor payments",
	"Reconcile hundi collection with bank deposits",
}

// QuickAction shows a dashboard panel for "show alerts", "view approvals"
// and similar requests.
func QuickAction(req Request) *Reply {
	m := quickActionPattern.FindStringSubmatch(req.Query)
	if m == nil {
		return nil
	}
	key := quickKey(m[1])
	panel, ok := quickPanels[key]
	if !ok {
		return nil
	}
	reply := &Reply{
		Text:  panel.text,
		Focus: []canvas.Section{canvas.NewFocus(panel.title, "", canvas.CardBody{Card: panel.card})},
	}
	if key == "finance" && keywords.Has(req.Query, "overdue") {
		reply.Planner = append([]string(nil), overdueActions...)
		reply.Text += fmt.Sprintf(" I've added %d follow-ups to your planner.", len(overdueActions))
	}
	return reply
}

func quickKey(target string) string {
	target = strings.ToLower(target)
	switch {
	case strings.HasPrefix(target, "alert"):
		return "alerts"
	case strings.HasPrefix(target, "approval"):
		return "approvals"
	case strings.HasPrefix(target, "appointment"):
		return "appointments"
	default:
		return "finance"
	}
}
