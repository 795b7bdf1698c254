package planner

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/csheth/templeops/internal/parser"
)

func TestVIPActionsSizes(t *testing.T) {
	cases := map[parser.ProtocolLevel]int{
		parser.ProtocolMaximum:  10,
		parser.ProtocolHigh:     7,
		parser.ProtocolStandard: 5,
		"":                      5,
	}
	for level, want := range cases {
		if got := len(VIPActions(level)); got != want {
			t.Fatalf("VIPActions(%q) returned %d actions, want %d", level, got, want)
		}
	}
}

func TestVIPActionsDoesNotAliasBaseList(t *testing.T) {
	first := VIPActions(parser.ProtocolStandard)
	first[0] = "changed"
	if VIPActions(parser.ProtocolStandard)[0] == "changed" {
		t.Fatalf("VIPActions returned a shared slice")
	}
}

func TestFormatAndParseRoundTrip(t *testing.T) {
	actions := []string{"Review budget", "Notify security", "Review budget"}
	formatted := Format(actions)
	if formatted != "[·] Review budget\n[·] Notify security\n[·] Review budget" {
		t.Fatalf("unexpected format %q", formatted)
	}
	if diff := cmp.Diff(actions, Parse(formatted)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFlattensNewlines(t *testing.T) {
	got := Format([]string{"line one\nline two", "crlf\r\nbreak"})
	if got != "[·] line one line two\n[·] crlf break" {
		t.Fatalf("Format = %q", got)
	}
}

func TestFormatKeepsSpacing(t *testing.T) {
	actions := []string{"a  b", " lead", "trail ", ""}
	if diff := cmp.Diff(actions, Parse(Format(actions))); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"  call   the\tflorist ", "", " \n "})
	if diff := cmp.Diff([]string{"call the florist"}, got); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeAppendsWithoutDeduplicating(t *testing.T) {
	content := Merge("", []string{"Review budget"})
	content = Merge(content, []string{"Notify security"})
	content = Merge(content, []string{"Notify security"})
	want := "[·] Review budget\n[·] Notify security\n[·] Notify security"
	if content != want {
		t.Fatalf("Merge = %q, want %q", content, want)
	}
	if got := Merge(want, nil); got != want {
		t.Fatalf("Merge with nothing changed content: %q", got)
	}
}

func TestSplitRequest(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "numbered",
			text: "Plan for Sunday: 1. book the hall 2. call the florist 3) inform security",
			want: []string{"Plan for Sunday", "Book the hall", "Call the florist", "Inform security"},
		},
		{
			name: "bullets",
			text: "- order camphor\n- clean the lamps",
			want: []string{"Order camphor", "Clean the lamps"},
		},
		{
			name: "commas and a trailing conjunction",
			text: "I need to book the hall, call the florist and inform security",
			want: []string{"Book the hall", "Call the florist", "Inform security"},
		},
		{
			name: "conjunctions only",
			text: "we need to paint the gate then fix the lights",
			want: []string{"Paint the gate", "Fix the lights"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, SplitRequest(tc.text)); diff != "" {
				t.Fatalf("SplitRequest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFollowUps(t *testing.T) {
	got := FollowUps("what is on the lunch menu for the festival")
	want := []string{
		"Confirm prasadam quantities with the kitchen supervisor",
		"Check grocery stock for the next three days",
		"Review festival readiness with department heads",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FollowUps mismatch (-want +got):\n%s", diff)
	}
	if got := FollowUps("tell me something"); len(got) != 1 {
		t.Fatalf("expected the default follow-up, got %v", got)
	}
}

func TestNamedChecklistsMentionSubject(t *testing.T) {
	if !strings.Contains(RitualActions("Chandi Homa")[0], "Chandi Homa") {
		t.Fatalf("ritual checklist does not mention the ritual")
	}
	if !strings.Contains(FestivalActions("Navaratri")[1], "Navaratri") {
		t.Fatalf("festival checklist does not mention the festival")
	}
	if !strings.Contains(LeaderVisitActions("")[0], "the visiting acharya") {
		t.Fatalf("leader checklist lacks the default name")
	}
	if Capitalize("") != "" || Capitalize("ärati") != "Ärati" {
		t.Fatalf("Capitalize mishandles edge cases")
	}
}
