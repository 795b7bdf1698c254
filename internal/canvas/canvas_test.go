package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlannerSectionMergeKeepsVisiblePrefix(t *testing.T) {
	s := NewPlanner([]string{"Review budget"})
	assert.Equal(t, PlannerID, s.ID)
	assert.Equal(t, PlannerTitle, s.Title)
	assert.Equal(t, KindList, s.Kind())
	assert.False(t, s.RevealsWhole())

	s.IsVisible = true
	s.VisibleContent = s.Content
	require.True(t, s.Revealed())

	s.AppendActions([]string{"Notify security"})
	assert.Equal(t, "[·] Review budget\n[·] Notify security", s.Content)
	assert.True(t, strings.HasPrefix(s.Content, s.VisibleContent))
	assert.False(t, s.Revealed())
	assert.Equal(t, []string{"Review budget", "Notify security"}, s.Actions())
}

func TestPlannerNormalizesActions(t *testing.T) {
	s := NewPlanner([]string{"  review   budget", ""})
	s.AppendActions([]string{" ", "notify\tsecurity "})
	assert.Equal(t, "[·] review budget\n[·] notify security", s.Content)
	assert.Equal(t, []string{"review budget", "notify security"}, s.Actions())

	before := s.Content
	s.AppendActions([]string{"   "})
	assert.Equal(t, before, s.Content)
}

func TestFocusSectionsRevealWhole(t *testing.T) {
	steps := NewFocus("Ritual Plan", "", StepsBody{Steps: []string{"Sankalpa", "Purnahuti"}})
	assert.True(t, steps.IsFocus())
	assert.True(t, steps.RevealsWhole())
	assert.Equal(t, "1. Sankalpa\n2. Purnahuti", steps.Content)

	other := NewFocus("Ritual Plan", "", StepsBody{})
	assert.NotEqual(t, steps.ID, other.ID)

	immediate := New("notice", "Notice", TextBody{Text: "Gate closes at 9 PM", Immediate: true})
	assert.Equal(t, KindTextImmediate, immediate.Kind())
	assert.True(t, immediate.RevealsWhole())

	typed := New("notes", "Notes", TextBody{Text: "typed"})
	assert.False(t, typed.RevealsWhole())
}

func TestCardRendering(t *testing.T) {
	card := Card{
		Heading:         "VIP Visit Briefing",
		Fields:          []Field{{Label: "Visitor", Value: "Modi"}, {Label: "Location", Value: ""}},
		Highlights:      []string{"Maximum protocol"},
		Recommendations: []string{"Show security roster"},
	}
	assert.Equal(t, "VIP Visit Briefing\nVisitor: Modi\n• Maximum protocol\nSuggested next: Show security roster", card.Render())

	md := card.Markdown()
	assert.Contains(t, md, "### VIP Visit Briefing")
	assert.Contains(t, md, "**Visitor:** Modi")
	assert.NotContains(t, md, "Location")
	assert.Equal(t, KindComponents, CardBody{Card: card}.Kind())
}
