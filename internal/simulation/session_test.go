package simulation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/intent"
	"github.com/csheth/templeops/internal/parser"
	"github.com/csheth/templeops/internal/scenario"
)

var refNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(Pacing{},
		WithLogger(zaptest.NewLogger(t)),
		WithClock(func() time.Time { return refNow }),
		WithPicker(func(int) int { return 0 }))
}

func submit(t *testing.T, s *Session, query string, opts Options) State {
	t.Helper()
	turn, err := s.Submit(query, opts)
	require.NoError(t, err)
	return s.Drain(turn)
}

func messagesWithRole(st State, role Role) []ChatMessage {
	var out []ChatMessage
	for _, m := range st.Messages {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

func TestInventoryQueryIsChatOnly(t *testing.T) {
	s := newTestSession(t)
	st := submit(t, s, "do we have flower stock", Options{})

	assert.Equal(t, StatusComplete, st.Status)
	assert.Empty(t, st.Sections)
	require.Len(t, st.Messages, 2)
	assert.Equal(t, RoleUser, st.Messages[0].Role)
	assert.Equal(t, "do we have flower stock", st.Messages[0].Text)
	assert.Equal(t, scenario.FlowerStockAnswer, st.Messages[1].Text)
	assert.False(t, st.Messages[1].IsTyping)
	assert.Empty(t, messagesWithRole(st, RoleSystem), "no planning message without sections")
}

func TestPlannerMergesAcrossTurns(t *testing.T) {
	s := newTestSession(t)
	submit(t, s, "add review budget to plan", Options{})
	st := submit(t, s, "add notify security to plan", Options{})

	require.Len(t, st.Sections, 1)
	plan, ok := st.Planner()
	require.True(t, ok)
	assert.Equal(t, canvas.PlannerTitle, plan.Title)
	assert.Equal(t, "[·] Review budget\n[·] Notify security", plan.Content)
	assert.Equal(t, plan.Content, plan.VisibleContent)
	assert.Len(t, messagesWithRole(st, RoleSystem), 2, "one planning message per turn")
}

func TestMergeOnlyTurnAnnouncesPlanning(t *testing.T) {
	s := newTestSession(t)
	submit(t, s, "add review budget to plan", Options{})
	before := len(s.Snapshot().Messages)

	st := submit(t, s, "add notify security to plan", Options{})
	var roles []Role
	for _, m := range st.Messages[before:] {
		roles = append(roles, m.Role)
	}
	want := []Role{RoleUser, RoleAssistant, RoleSystem}
	if diff := cmp.Diff(want, roles); diff != "" {
		t.Fatalf("second turn messages (-want +got):\n%s", diff)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := newTestSession(t)
	submit(t, s, "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", Options{})

	s.Reset()
	first := s.Snapshot()
	s.Reset()
	second := s.Snapshot()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("reset not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(State{Status: StatusIdle}, second); diff != "" {
		t.Fatalf("reset state mismatch (-want +got):\n%s", diff)
	}
}

func TestGibberishFallsBack(t *testing.T) {
	const query = "asdf qwerty zxcv"
	det := intent.Detect(query)
	assert.Equal(t, intent.Unknown, det.Kind)
	assert.LessOrEqual(t, det.Confidence, 0.1)

	s := newTestSession(t)
	st := submit(t, s, query, Options{})
	assert.Empty(t, st.Sections)
	assistant := messagesWithRole(st, RoleAssistant)
	require.Len(t, assistant, 1)
	assert.Contains(t, scenario.FallbackMessages, assistant[0].Text)
}

func TestVIPVisitBuildsCanvas(t *testing.T) {
	s := newTestSession(t)
	var got *parser.VIPVisit
	st := submit(t, s, "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", Options{
		OnVIPVisitParsed: func(v parser.VIPVisit) { got = &v },
	})

	require.NotNil(t, got)
	assert.Equal(t, parser.ProtocolMaximum, got.ProtocolLevel)
	assert.Equal(t, "Sringeri", got.Location)

	require.Len(t, st.Sections, 2)
	assert.True(t, st.Sections[0].IsFocus())
	assert.True(t, st.Sections[1].IsPlanner())
	for _, sec := range st.Sections {
		assert.True(t, sec.IsVisible)
		assert.Equal(t, sec.Content, sec.VisibleContent)
	}
	plan, _ := st.Planner()
	assert.Len(t, plan.Actions(), 10)

	system := messagesWithRole(st, RoleSystem)
	require.Len(t, system, 1)
	assert.Equal(t, PlanningMessage, system[0].Text)
}

func TestNewFocusEvictsOldFocusButKeepsPlanner(t *testing.T) {
	s := newTestSession(t)
	submit(t, s, "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", Options{})
	st := submit(t, s, "show pending approvals", Options{})

	var focus []canvas.Section
	for _, sec := range st.Sections {
		if sec.IsFocus() {
			focus = append(focus, sec)
		}
	}
	require.Len(t, focus, 1)
	assert.Equal(t, "Pending Approvals", focus[0].Title)
	plan, ok := st.Planner()
	require.True(t, ok)
	assert.Len(t, plan.Actions(), 10)
}

func TestStaleTurnIsIgnored(t *testing.T) {
	s := newTestSession(t)
	first, err := s.Submit("add review budget to plan", Options{})
	require.NoError(t, err)
	second, err := s.Submit("do we have flower stock", Options{})
	require.NoError(t, err)

	assert.False(t, s.Dispatch(first.ID))
	assert.True(t, s.Step(first.ID).Done)
	assert.True(t, s.TypeStep(first.ID).Done)

	assert.True(t, s.Dispatch(second.ID))
	assert.False(t, s.Dispatch(second.ID), "second dispatch of the same turn")
	st := s.Drain(second)
	assert.Empty(t, st.Sections)
}

func TestSupersedingFinishesTyping(t *testing.T) {
	s := newTestSession(t)
	first, err := s.Submit("do we have flower stock", Options{})
	require.NoError(t, err)
	require.True(t, s.Dispatch(first.ID))
	s.TypeStep(first.ID)

	mid := messagesWithRole(s.Snapshot(), RoleAssistant)
	require.Len(t, mid, 1)
	assert.Equal(t, "F", mid[0].Text)
	assert.True(t, mid[0].IsTyping)

	_, err = s.Submit("go to assets", Options{})
	require.NoError(t, err)
	done := messagesWithRole(s.Snapshot(), RoleAssistant)
	assert.Equal(t, scenario.FlowerStockAnswer, done[0].Text)
	assert.False(t, done[0].IsTyping)
}

func TestRevealKeepsPrefixes(t *testing.T) {
	s := newTestSession(t)
	submit(t, s, "add review budget to plan", Options{})
	turn, err := s.Submit("Plan a Chandi homa for Sunday", Options{})
	require.NoError(t, err)
	require.True(t, s.Dispatch(turn.ID))

	check := func() {
		st := s.Snapshot()
		for _, sec := range st.Sections {
			if !strings.HasPrefix(sec.Content, sec.VisibleContent) {
				t.Fatalf("section %s: %q is not a prefix of %q", sec.ID, sec.VisibleContent, sec.Content)
			}
		}
		for _, m := range st.Messages {
			if !strings.HasPrefix(m.FullText, m.Text) {
				t.Fatalf("message %s: %q is not a prefix of %q", m.ID, m.Text, m.FullText)
			}
		}
	}
	steps, typing := true, true
	for steps || typing {
		if steps {
			steps = !s.Step(turn.ID).Done
		}
		if typing {
			typing = !s.TypeStep(turn.ID).Done
		}
		check()
	}
	st := s.Snapshot()
	assert.Equal(t, StatusComplete, st.Status)
	plan, _ := st.Planner()
	assert.True(t, strings.HasPrefix(plan.Content, "[·] Review budget\n[·] Fix the muhurtha"))
}

func TestFocusCardRevealsWhole(t *testing.T) {
	s := newTestSession(t)
	turn, err := s.Submit("show pending approvals", Options{})
	require.NoError(t, err)
	require.True(t, s.Dispatch(turn.ID))

	tick := s.Step(turn.ID)
	assert.Zero(t, tick.Delay)
	st := s.Snapshot()
	require.Len(t, st.Sections, 1)
	assert.True(t, st.Sections[0].Revealed())
}

func TestRecommendationSubmission(t *testing.T) {
	s := newTestSession(t)
	turn, err := s.Submit(RecPrefix+"Sharan Navaratri", Options{DisplayQuery: "Sharan Navaratri"})
	require.NoError(t, err)
	assert.Equal(t, "Sharan Navaratri", turn.Query)

	st := s.Drain(turn)
	assert.Equal(t, "Sharan Navaratri", st.Messages[0].Text)
	require.NotEmpty(t, st.Sections)
	assert.Equal(t, "Sharan Navaratri", st.Sections[0].Title)
}

func TestModuleSwitchCallback(t *testing.T) {
	s := newTestSession(t)
	var module string
	st := submit(t, s, "go to assets", Options{OnModuleDetected: func(m string) { module = m }})
	assert.Equal(t, "Assets", module)
	assert.Equal(t, "Assets", st.Module)
	assert.Empty(t, st.Sections)
}

func TestClearPlanner(t *testing.T) {
	s := newTestSession(t)
	submit(t, s, "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", Options{})
	s.ClearPlanner()

	st := s.Snapshot()
	_, ok := st.Planner()
	assert.False(t, ok)
	require.Len(t, st.Sections, 1)
	assert.True(t, st.Sections[0].IsFocus())

	st = submit(t, s, "add review budget to plan", Options{})
	plan, ok := st.Planner()
	require.True(t, ok)
	assert.Equal(t, "[·] Review budget", plan.Content)
}

func TestEmptyQueryRejected(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Submit("   ", Options{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
	_, err = s.Submit(RecPrefix, Options{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, StatusIdle, s.Snapshot().Status)
}
