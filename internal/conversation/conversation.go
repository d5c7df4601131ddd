// Package conversation keeps the ordered record of interview exchanges and
// derives running statistics from it.
package conversation

import (
	"errors"
	"time"

	"github.com/abhisek/intervue/internal/evaluation"
)

// ErrCompleted is returned by Append once the conversation is complete.
var ErrCompleted = errors.New("conversation is completed")

// Exchange is one answered question. Exchanges are handed out by value and
// never modified after creation.
type Exchange struct {
	SequenceNumber int                   `json:"question_number"`
	Question       string                `json:"interviewer"`
	Response       string                `json:"candidate"`
	Evaluation     evaluation.Evaluation `json:"evaluation"`
	Score          int                   `json:"score"`
	Timestamp      time.Time             `json:"timestamp"`
	Skipped        bool                  `json:"skipped,omitempty"`
}

// State is the ordered record of an interview.
type State struct {
	maxQuestions int
	startTime    time.Time
	exchanges    []Exchange
	closed       bool
	now          func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// New creates an empty conversation that completes after maxQuestions
// exchanges.
func New(maxQuestions int, opts ...Option) *State {
	s := &State{maxQuestions: maxQuestions, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.startTime = s.now()
	return s
}

// Append records an exchange. It fails with ErrCompleted once the
// question budget is used up or Close was called.
func (s *State) Append(question, response string, ev evaluation.Evaluation, skipped bool) (Exchange, error) {
	if s.Completed() {
		return Exchange{}, ErrCompleted
	}

	ex := Exchange{
		SequenceNumber: len(s.exchanges) + 1,
		Question:       question,
		Response:       response,
		Evaluation:     ev,
		Score:          ev.Score,
		Timestamp:      s.now(),
		Skipped:        skipped,
	}
	s.exchanges = append(s.exchanges, ex)
	return ex, nil
}

// Close ends the conversation early.
func (s *State) Close() { s.closed = true }

// Completed reports whether no more exchanges are accepted.
func (s *State) Completed() bool {
	return s.closed || len(s.exchanges) >= s.maxQuestions
}

// Len returns the number of recorded exchanges.
func (s *State) Len() int { return len(s.exchanges) }

func (s *State) MaxQuestions() int { return s.maxQuestions }

func (s *State) StartTime() time.Time { return s.startTime }

// History returns a copy of all exchanges in interview order.
func (s *State) History() []Exchange {
	out := make([]Exchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

// RecentQuestions returns the last n question texts, oldest first.
func (s *State) RecentQuestions(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(len(s.exchanges)-n, 0)
	out := make([]string, 0, len(s.exchanges)-start)
	for _, ex := range s.exchanges[start:] {
		out = append(out, ex.Question)
	}
	return out
}

// Scores returns the evaluation scores in interview order.
func (s *State) Scores() []int {
	out := make([]int, len(s.exchanges))
	for i, ex := range s.exchanges {
		out[i] = ex.Score
	}
	return out
}

// Questions returns every question asked, in order.
func (s *State) Questions() []string {
	return s.RecentQuestions(len(s.exchanges))
}
