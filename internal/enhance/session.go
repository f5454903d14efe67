package enhance

import (
	"context"
	"errors"
	"strings"

	appErrors "resumecraft/internal/errors"
)

// State is the lifecycle position of a session.
type State int

const (
	// StateIdle means no suggestion is in flight or held.
	StateIdle State = iota
	// StatePending means a provider call is in flight.
	StatePending
	// StateProposed means a suggestion is held, awaiting Accept or Reject.
	StateProposed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateProposed:
		return "proposed"
	}
	return "unknown"
}

// ErrBusy is returned when a Propose arrives while a previous suggestion is
// still in flight or undecided. One suggestion per session at a time.
var ErrBusy = errors.New("enhancement already in progress for this field")

// ErrNoSuggestion is returned by Accept or Reject when nothing is proposed.
var ErrNoSuggestion = errors.New("no suggestion to act on")

// ErrAggregateSuggestion marks an accepted aggregate suggestion. The text is
// returned alongside it, but there is no per-entry write-back mapping, so the
// caller must treat it as informational rather than applying it to the
// document.
var ErrAggregateSuggestion = errors.New("aggregate suggestion is informational only")

// Session tracks one field's enhancement lifecycle. A failed provider call is
// reported to the caller and the session returns to idle; failure is never a
// resting state. Sessions never touch the document: Accept hands the text
// back and the caller routes it through the editor.
type Session struct {
	service   *Service
	section   string
	aggregate bool

	state      State
	suggestion string
}

// NewSession creates a session for a single document field.
func NewSession(service *Service, section string) *Session {
	return &Session{service: service, section: section}
}

// NewAggregateSession creates a session for the joined skills text. Its
// accepted suggestions are informational only.
func NewAggregateSession(service *Service) *Session {
	return &Session{service: service, section: SectionSkills, aggregate: true}
}

// State returns the session's current lifecycle position.
func (s *Session) State() State {
	return s.state
}

// Section returns the section this session enhances.
func (s *Session) Section() string {
	return s.section
}

// Aggregate reports whether accepted suggestions are informational only.
func (s *Session) Aggregate() bool {
	return s.aggregate
}

// Suggestion returns the held suggestion, valid only in the proposed state.
func (s *Session) Suggestion() (string, bool) {
	if s.state != StateProposed {
		return "", false
	}
	return s.suggestion, true
}

// Propose submits the field's content for enhancement. Whitespace-only
// content is rejected locally without a provider call. A provider failure is
// returned and the session resets to idle.
func (s *Session) Propose(ctx context.Context, content string) error {
	if s.state != StateIdle {
		return ErrBusy
	}
	if strings.TrimSpace(content) == "" {
		return appErrors.NewValidationError(appErrors.ErrCodeEmptyContent,
			"Content cannot be empty", nil).
			WithContext("section", s.section)
	}

	s.state = StatePending
	resp, err := s.service.Enhance(ctx, Request{Section: s.section, Content: content})
	if err != nil {
		s.state = StateIdle
		return err
	}

	s.suggestion = resp.EnhancedContent
	s.state = StateProposed
	return nil
}

// Accept releases the held suggestion and resets the session. For aggregate
// sessions the text comes back with ErrAggregateSuggestion so callers cannot
// silently auto-apply it.
func (s *Session) Accept() (string, error) {
	if s.state != StateProposed {
		return "", ErrNoSuggestion
	}
	text := s.suggestion
	s.suggestion = ""
	s.state = StateIdle
	if s.aggregate {
		return text, ErrAggregateSuggestion
	}
	return text, nil
}

// Reject discards the held suggestion and resets the session. The document is
// never touched.
func (s *Session) Reject() error {
	if s.state != StateProposed {
		return ErrNoSuggestion
	}
	s.suggestion = ""
	s.state = StateIdle
	return nil
}
