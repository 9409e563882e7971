// Package heal drives the validate-and-regenerate loop that turns an
// invalid generated artifact into a valid one, or the best available
// candidate when the budget runs out.
package heal

import (
	"github.com/google/uuid"

	"uismith/internal/validate"
)

// Attempt is one iteration of the loop: the candidate code, its
// validation outcome, and whether the candidate came from a deterministic
// rename rather than regeneration.
type Attempt struct {
	Code           string            `json:"code"`
	Errors         validate.ErrorSet `json:"errors"`
	AutoFixApplied bool              `json:"auto_fix_applied"`
}

// Session owns the ordered attempts of one healing run. Sessions are
// created fresh per request and discarded afterward; no state crosses
// requests.
type Session struct {
	ID          uuid.UUID
	MaxAttempts int
	Attempts    []Attempt
}

// NewSession creates a session with an attempt budget.
func NewSession(maxAttempts int) *Session {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Session{
		ID:          uuid.New(),
		MaxAttempts: maxAttempts,
	}
}

// Record appends an attempt. Attempt order is the only timestamp the
// loop needs.
func (s *Session) Record(a Attempt) {
	s.Attempts = append(s.Attempts, a)
}

// Last returns the most recent attempt.
func (s *Session) Last() Attempt {
	return s.Attempts[len(s.Attempts)-1]
}

// Exhausted reports whether the attempt budget is spent.
func (s *Session) Exhausted() bool {
	return len(s.Attempts) >= s.MaxAttempts
}

// Stuck reports whether the two most recent attempts produced identical
// non-empty error sets, meaning regeneration is not making progress.
func (s *Session) Stuck() bool {
	n := len(s.Attempts)
	if n < 2 {
		return false
	}
	prev, cur := s.Attempts[n-2].Errors, s.Attempts[n-1].Errors
	return !cur.Empty() && cur.Equal(prev)
}

// Best returns the attempt with the lowest total error count, keeping
// the earliest on ties.
func (s *Session) Best() Attempt {
	best := s.Attempts[0]
	for _, a := range s.Attempts[1:] {
		if a.Errors.Total() < best.Errors.Total() {
			best = a
		}
	}
	return best
}

// History returns every attempt's error set in order.
func (s *Session) History() []validate.ErrorSet {
	history := make([]validate.ErrorSet, len(s.Attempts))
	for i, a := range s.Attempts {
		history[i] = a.Errors
	}
	return history
}
