package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/templeops/internal/intent"
)

var refNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func TestParseVIPVisitPrimeMinister(t *testing.T) {
	visit := ParseVIPVisit("Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", refNow)
	require.NotNil(t, visit)
	assert.Equal(t, "Modi", visit.Visitor)
	assert.Equal(t, "Prime Minister", visit.Title)
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), visit.Date)
	assert.Equal(t, "09:00", visit.Time)
	assert.Equal(t, "Sringeri", visit.Location)
	assert.Equal(t, ProtocolMaximum, visit.ProtocolLevel)
	assert.InDelta(t, 1.0, visit.Confidence, 1e-9)
}

func TestParseVIPVisitRequiresPersonDateAndTime(t *testing.T) {
	for _, q := range []string{
		"Prime Minister Modi is visiting Sringeri",             // no date or time
		"Tomorrow, Prime Minister Modi is visiting",            // no time
		"at 9 AM someone important is visiting the main hall", // no date
	} {
		assert.Nil(t, ParseVIPVisit(q, refNow), q)
	}
}

func TestParseVIPVisitConfidenceWithoutTitleOrLocation(t *testing.T) {
	visit := ParseVIPVisit("Ramesh Kumar is arriving tomorrow 4 PM", refNow)
	require.NotNil(t, visit)
	assert.Equal(t, "16:00", visit.Time)
	assert.Empty(t, visit.Title)
	assert.Equal(t, ProtocolStandard, visit.ProtocolLevel)
	assert.InDelta(t, 0.85, visit.Confidence, 1e-9)
}

func TestProtocolFor(t *testing.T) {
	cases := map[string]ProtocolLevel{
		"President":      ProtocolMaximum,
		"Vice President": ProtocolMaximum,
		"Governor":       ProtocolMaximum,
		"Prime Minister": ProtocolMaximum,
		"Chief Minister": ProtocolHigh,
		"Minister":       ProtocolHigh,
		"Judge":          ProtocolHigh,
		"Chief Justice":  ProtocolHigh,
		"Dr":             ProtocolStandard,
		"":               ProtocolStandard,
		"Administrator":  ProtocolStandard,
	}
	for title, want := range cases {
		assert.Equal(t, want, ProtocolFor(title), title)
	}
}

func TestParseQueryVIPFloorsConfidence(t *testing.T) {
	res := ParseQuery("Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", refNow)
	assert.Equal(t, intent.VIPVisit, res.Intent)
	assert.GreaterOrEqual(t, res.Confidence, 0.7)
	assert.Empty(t, res.Errors)
	visit, ok := res.Visit()
	require.True(t, ok)
	assert.Equal(t, ProtocolMaximum, visit.ProtocolLevel)
	assert.Equal(t, "Sringeri", visit.Location)
}

func TestParseQueryVIPWithoutDetailsHalvesConfidence(t *testing.T) {
	res := ParseQuery("The governor is visiting soon, VIP protocol needed", refNow)
	require.Equal(t, intent.VIPVisit, res.Intent)
	assert.Nil(t, res.Data)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrParseFailure, res.Errors[0].Kind)
	assert.NotEmpty(t, res.Suggestions)
	assert.InDelta(t, 0.75/2, res.Confidence, 1e-9)
}

func TestParseQueryUnhandledIntent(t *testing.T) {
	res := ParseQuery("Schedule a meeting with the trustee", refNow)
	assert.Equal(t, intent.Appointment, res.Intent)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrUnhandledIntent, res.Errors[0].Kind)
	assert.Contains(t, res.Errors[0].Error(), "appointment")
	assert.InDelta(t, 0.45, res.Confidence, 1e-9)
}

func TestParseQueryGibberish(t *testing.T) {
	res := ParseQuery("asdf qwerty zxcv", refNow)
	assert.Equal(t, intent.Unknown, res.Intent)
	assert.LessOrEqual(t, res.Confidence, 0.1)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrNoIntent, res.Errors[0].Kind)
	assert.NotEmpty(t, res.Suggestions)
}

func TestParseFlexible(t *testing.T) {
	cases := []struct {
		query   string
		kind    FlexibleKind
		verb    string
		subject string
	}{
		{query: "Help me plan the Rathotsava procession", kind: FlexiblePlanning, verb: "plan", subject: "Rathotsava procession"},
		{query: "prepare for Shivaratri night", kind: FlexiblePlanning, verb: "prepare for", subject: "Shivaratri night"},
		{query: "What is the status of gopuram painting?", kind: FlexibleProgress, verb: "status", subject: "gopuram painting"},
		{query: "How is the chariot repair going", kind: FlexibleProgress, verb: "going", subject: "chariot repair"},
		{query: "Notify security about the new gate timings", kind: FlexibleAction, verb: "notify", subject: "security about the new gate timings"},
		{query: "what's for lunch today", kind: FlexibleKitchen, subject: "lunch"},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := ParseFlexible(tc.query)
			require.NotNil(t, got)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.verb, got.Verb)
			assert.Equal(t, tc.subject, got.Subject)
		})
	}
	assert.Nil(t, ParseFlexible("asdf qwerty"))
	assert.Nil(t, ParseFlexible("  "))
}
