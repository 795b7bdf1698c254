package simulation

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/intent"
	"github.com/csheth/templeops/internal/scenario"
)

// Session is the single writer of the simulation state. Every method takes
// the session lock; callers only ever see copies through Snapshot.
type Session struct {
	mu     sync.Mutex
	pacing Pacing
	log    *zap.Logger
	now    func() time.Time
	pick   func(int) int

	turn       uint64
	query      string
	opts       Options
	dispatched bool
	announced  bool
	cursor     int

	status   Status
	messages []ChatMessage
	sections []canvas.Section
	module   string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the time used to resolve relative dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPicker sets the choice function used for fallback replies.
func WithPicker(pick func(int) int) Option {
	return func(s *Session) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// NewSession returns an idle session.
func NewSession(pacing Pacing, opts ...Option) *Session {
	s := &Session{
		pacing: pacing,
		log:    zap.NewNop(),
		now:    time.Now,
		pick:   rand.IntN,
		status: StatusIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pacing returns the session's reveal delays.
func (s *Session) Pacing() Pacing {
	return s.pacing
}

// Submit starts a new turn. Any in-flight turn is superseded: its typing
// messages are completed at once and its IDs stop being accepted.
func (s *Session) Submit(query string, opts Options) (Turn, error) {
	text := strings.TrimSpace(query)
	if marker := strings.TrimSpace(RecPrefix); strings.HasPrefix(text, marker) {
		text = strings.TrimSpace(strings.TrimPrefix(text, marker))
		opts.IsRecommendation = true
	}
	if text == "" {
		return Turn{}, ErrEmptyQuery
	}
	display := strings.TrimSpace(opts.DisplayQuery)
	if display == "" {
		display = text
	}

	s.mu.Lock()
	superseded := s.status == StatusGenerating
	s.finishTyping()
	s.turn++
	turn := Turn{ID: s.turn, Query: text, Display: display}
	s.query = text
	s.opts = opts
	s.dispatched = false
	s.announced = false
	s.cursor = 0
	s.status = StatusGenerating
	s.messages = append(s.messages, ChatMessage{ID: uuid.NewString(), Role: RoleUser, Text: display, FullText: display})
	s.mu.Unlock()

	if superseded {
		s.log.Debug("turn superseded", zap.Uint64("turn", turn.ID-1))
	}
	s.log.Info("turn submitted",
		zap.Uint64("turn", turn.ID),
		zap.String("query", text),
		zap.Bool("recommendation", opts.IsRecommendation))
	return turn, nil
}

// Dispatch runs the scenario cascade for turn and applies the reply. It
// reports false for stale or already dispatched turns.
func (s *Session) Dispatch(turnID uint64) bool {
	s.mu.Lock()
	if turnID != s.turn || s.status != StatusGenerating || s.dispatched {
		s.mu.Unlock()
		return false
	}
	req := scenario.Request{Query: s.query, Now: s.now(), Pick: s.pick}
	var reply scenario.Reply
	if s.opts.IsRecommendation {
		reply = scenario.Recommendation(req)
	} else {
		reply = scenario.Resolve(req)
	}
	s.apply(reply)
	s.dispatched = true
	opts := s.opts
	query := s.query
	s.mu.Unlock()

	s.log.Info("turn dispatched",
		zap.Uint64("turn", turnID),
		zap.String("handler", reply.Handler),
		zap.String("intent", string(intent.Detect(query).Kind)),
		zap.Int("planner_actions", len(reply.Planner)),
		zap.Int("focus_cards", len(reply.Focus)))

	if reply.Visit != nil && opts.OnVIPVisitParsed != nil {
		opts.OnVIPVisitParsed(*reply.Visit)
	}
	if reply.Module != "" && opts.OnModuleDetected != nil {
		opts.OnModuleDetected(reply.Module)
	}
	return true
}

// apply installs a reply. Focus cards replace every previous focus card and
// sit ahead of the planner; planner actions merge into the one planner.
func (s *Session) apply(reply scenario.Reply) {
	if reply.Text != "" {
		s.messages = append(s.messages, ChatMessage{
			ID:       uuid.NewString(),
			Role:     RoleAssistant,
			FullText: reply.Text,
			IsTyping: true,
		})
	}
	if len(reply.Focus) > 0 {
		kept := s.sections[:0:0]
		for _, sec := range s.sections {
			if !sec.IsFocus() {
				kept = append(kept, sec)
			}
		}
		s.sections = append(append([]canvas.Section(nil), reply.Focus...), kept...)
	}
	if len(reply.Planner) > 0 {
		if i := s.plannerIndex(); i >= 0 {
			s.sections[i].AppendActions(reply.Planner)
		} else {
			s.sections = append(s.sections, canvas.NewPlanner(reply.Planner))
		}
	}
	if reply.Module != "" {
		s.module = reply.Module
	}
	s.cursor = len(s.sections)
	for i, sec := range s.sections {
		if !sec.Revealed() {
			s.cursor = i
			break
		}
	}
}

func (s *Session) plannerIndex() int {
	for i, sec := range s.sections {
		if sec.IsPlanner() {
			return i
		}
	}
	return -1
}

// Step advances the section reveal by one tick.
func (s *Session) Step(turnID uint64) Tick {
	s.mu.Lock()
	defer s.mu.Unlock()
	if turnID != s.turn || s.status != StatusGenerating || !s.dispatched {
		return Tick{Done: true}
	}
	if s.cursor >= len(s.sections) {
		s.status = StatusComplete
		s.log.Debug("turn complete", zap.Uint64("turn", turnID))
		return Tick{Done: true}
	}

	sec := &s.sections[s.cursor]
	// Announce once per turn, on the first section with anything left to
	// show. A merge into a visible planner counts.
	if !s.announced && !sec.Revealed() {
		s.announced = true
		s.messages = append(s.messages, ChatMessage{ID: uuid.NewString(), Role: RoleSystem, Text: PlanningMessage, FullText: PlanningMessage})
	}
	if !sec.IsVisible {
		sec.IsVisible = true
		if !sec.RevealsWhole() {
			return Tick{}
		}
	}
	if sec.RevealsWhole() {
		sec.VisibleContent = sec.Content
		s.cursor++
		return Tick{}
	}
	if n := len(sec.VisibleContent); n < len(sec.Content) {
		_, size := utf8.DecodeRuneInString(sec.Content[n:])
		sec.VisibleContent = sec.Content[:n+size]
		return Tick{Delay: s.pacing.SectionCharDelay}
	}
	s.cursor++
	return Tick{Delay: s.pacing.SectionPause}
}

// TypeStep advances the chat typewriter by one rune.
func (s *Session) TypeStep(turnID uint64) Tick {
	s.mu.Lock()
	defer s.mu.Unlock()
	if turnID != s.turn || !s.dispatched {
		return Tick{Done: true}
	}
	for i := range s.messages {
		msg := &s.messages[i]
		if !msg.IsTyping {
			continue
		}
		n := len(msg.Text)
		if n < len(msg.FullText) {
			_, size := utf8.DecodeRuneInString(msg.FullText[n:])
			msg.Text = msg.FullText[:n+size]
		}
		if len(msg.Text) == len(msg.FullText) {
			msg.IsTyping = false
		}
		return Tick{Delay: s.pacing.ChatCharDelay}
	}
	return Tick{Done: true}
}

func (s *Session) finishTyping() {
	for i := range s.messages {
		if s.messages[i].IsTyping {
			s.messages[i].Text = s.messages[i].FullText
			s.messages[i].IsTyping = false
		}
	}
}

// ClearPlanner removes the planner section.
func (s *Session) ClearPlanner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.plannerIndex()
	if i < 0 {
		return
	}
	s.sections = append(s.sections[:i], s.sections[i+1:]...)
	if s.cursor > i {
		s.cursor--
	}
	s.log.Debug("planner cleared")
}

// Reset clears the session and returns it to idle. Outstanding turns become
// stale.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turn++
	s.query = ""
	s.opts = Options{}
	s.dispatched = false
	s.announced = false
	s.cursor = 0
	s.status = StatusIdle
	s.messages = nil
	s.sections = nil
	s.module = ""
	s.log.Debug("session reset")
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{Status: s.status, Module: s.module}
	if len(s.messages) > 0 {
		st.Messages = append([]ChatMessage(nil), s.messages...)
	}
	if len(s.sections) > 0 {
		st.Sections = append([]canvas.Section(nil), s.sections...)
	}
	return st
}

// Drain plays the current turn to completion without delays. Headless
// callers use it instead of a Runner.
func (s *Session) Drain(turn Turn) State {
	s.Dispatch(turn.ID)
	for !s.Step(turn.ID).Done {
	}
	for !s.TypeStep(turn.ID).Done {
	}
	return s.Snapshot()
}
