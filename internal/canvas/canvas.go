// Package canvas models the sections shown beside the chat: the planner list
// and the focus cards a scenario installs.
package canvas

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/csheth/templeops/internal/planner"
)

// Kind controls how a section is revealed.
type Kind string

const (
	KindText          Kind = "text"
	KindTextImmediate Kind = "text-immediate"
	KindList          Kind = "list"
	KindSteps         Kind = "steps"
	KindComponents    Kind = "components"
)

const (
	PlannerID    = "planner"
	PlannerTitle = "Your Planner Actions"
	FocusPrefix  = "focus-"
)

// Body is the typed payload of a section. Implementations are TextBody,
// ListBody, StepsBody and CardBody.
type Body interface {
	Kind() Kind
	Render() string
}

type TextBody struct {
	Text      string
	Immediate bool
}

func (b TextBody) Kind() Kind {
	if b.Immediate {
		return KindTextImmediate
	}
	return KindText
}

func (b TextBody) Render() string { return b.Text }

type ListBody struct {
	Items []string
}

func (ListBody) Kind() Kind { return KindList }

func (b ListBody) Render() string { return planner.Format(b.Items) }

type StepsBody struct {
	Steps []string
}

func (StepsBody) Kind() Kind { return KindSteps }

func (b StepsBody) Render() string {
	lines := make([]string, len(b.Steps))
	for i, s := range b.Steps {
		lines[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return strings.Join(lines, "\n")
}

type CardBody struct {
	Card Card
}

func (CardBody) Kind() Kind { return KindComponents }

func (b CardBody) Render() string { return b.Card.Render() }

// Section is one canvas block. Content is fixed when the section is built and
// only grows through a planner merge; VisibleContent is always a prefix of it.
type Section struct {
	ID             string
	Title          string
	SubTitle       string
	Body           Body
	Content        string
	VisibleContent string
	IsVisible      bool
}

// New builds a hidden section from a body.
func New(id, title string, body Body) Section {
	return Section{ID: id, Title: title, Body: body, Content: body.Render()}
}

// NewFocus builds a focus card section with a generated ID.
func NewFocus(title, subtitle string, body Body) Section {
	s := New(FocusPrefix+uuid.NewString(), title, body)
	s.SubTitle = subtitle
	return s
}

// NewPlanner builds the planner section.
func NewPlanner(actions []string) Section {
	return New(PlannerID, PlannerTitle, ListBody{Items: planner.Normalize(actions)})
}

// Kind returns the body's kind.
func (s Section) Kind() Kind {
	if s.Body == nil {
		return KindText
	}
	return s.Body.Kind()
}

// IsFocus reports whether the section is a focus card.
func (s Section) IsFocus() bool {
	return strings.HasPrefix(s.ID, FocusPrefix)
}

// IsPlanner reports whether the section is the planner.
func (s Section) IsPlanner() bool {
	return s.ID == PlannerID
}

// RevealsWhole reports whether the section appears in one step rather than
// being typed out.
func (s Section) RevealsWhole() bool {
	switch s.Kind() {
	case KindComponents, KindTextImmediate:
		return true
	}
	return s.IsFocus()
}

// Revealed reports whether all of Content is visible.
func (s Section) Revealed() bool {
	return s.IsVisible && len(s.VisibleContent) == len(s.Content)
}

// AppendActions merges actions into a planner section. Content grows by the
// new lines only, so VisibleContent stays a prefix.
func (s *Section) AppendActions(actions []string) {
	actions = planner.Normalize(actions)
	list, _ := s.Body.(ListBody)
	list.Items = append(append([]string(nil), list.Items...), actions...)
	s.Body = list
	s.Content = planner.Merge(s.Content, actions)
}

// Actions returns the planner lines of a list section.
func (s Section) Actions() []string {
	if list, ok := s.Body.(ListBody); ok {
		return append([]string(nil), list.Items...)
	}
	return nil
}
