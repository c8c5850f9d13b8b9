package deck

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ytget/catswipe/internal/model"
)

// Phase is the lifecycle stage of a swipe session
type Phase int

const (
	PhaseSwiping Phase = iota
	PhaseCommitting
	PhaseSummary
)

// String returns the phase name used in logs
func (p Phase) String() string {
	switch p {
	case PhaseSwiping:
		return "swiping"
	case PhaseCommitting:
		return "committing"
	case PhaseSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Session walks the queue one card at a time and records a decision per card.
// It is not safe for concurrent use; callers drive it from the UI goroutine.
type Session struct {
	id     string
	queue  Queue
	ledger *model.Ledger
	index  int
	phase  Phase
}

// NewSession creates a session over queue starting at the first card
func NewSession(queue Queue) *Session {
	return &Session{
		id:     uuid.NewString(),
		queue:  queue,
		ledger: model.NewLedger(),
		phase:  PhaseSwiping,
	}
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Index returns the current card index
func (s *Session) Index() int { return s.index }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Ledger returns the decision ledger
func (s *Session) Ledger() *model.Ledger { return s.ledger }

// Current returns the card being shown, or nil if it has not arrived yet
func (s *Session) Current() *model.CatRecord {
	return s.queue.At(s.index)
}

// AcceptsInput reports whether a new drag may start
func (s *Session) AcceptsInput() bool {
	return s.phase == PhaseSwiping && s.Current() != nil
}

// BeginCommit records the decision for the current card and enters the
// committing phase. Input is refused until FinishCommit is called.
func (s *Session) BeginCommit(dir Direction) error {
	if s.phase != PhaseSwiping {
		return fmt.Errorf("%w: phase %s", ErrNotSwiping, s.phase)
	}
	if s.Current() == nil {
		return fmt.Errorf("%w: index %d", ErrNoCard, s.index)
	}

	if err := s.ledger.Record(s.index, dir.Liked()); err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	s.phase = PhaseCommitting
	return nil
}

// FinishCommit advances to the next card and reports whether the session
// has reached its end.
func (s *Session) FinishCommit() bool {
	if s.phase != PhaseCommitting {
		return s.phase == PhaseSummary
	}

	s.index++
	if s.index >= s.queue.FinalSize() {
		s.phase = PhaseSummary
		return true
	}
	s.phase = PhaseSwiping
	return false
}

// Settle moves a waiting session to the summary when the queue ended short
// of its target and no card remains. It reports whether the session is over.
func (s *Session) Settle() bool {
	if s.phase == PhaseSwiping && s.index >= s.queue.FinalSize() {
		s.phase = PhaseSummary
	}
	return s.phase == PhaseSummary
}

// Terminal reports whether the session has reached the summary phase
func (s *Session) Terminal() bool {
	return s.phase == PhaseSummary
}

// Summary summarizes the liked cats seen so far
func (s *Session) Summary() model.Summary {
	return model.Summarize(s.queue.Snapshot(), s.ledger)
}
