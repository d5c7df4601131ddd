// Package session drives an interview from the opening question to the
// final report.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/intervue/internal/conversation"
	"github.com/abhisek/intervue/internal/evaluation"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/logger"
	"github.com/abhisek/intervue/internal/profile"
	"github.com/abhisek/intervue/internal/questiongen"
	"github.com/abhisek/intervue/internal/report"
	"github.com/abhisek/intervue/internal/store"
)

// SkipResponse is recorded as the candidate answer when a question is
// skipped.
const SkipResponse = "I'd prefer to skip this question."

// Turn is the result of answering one question.
type Turn struct {
	// Question is the next question, empty when IsFinal is set.
	Question   string
	Evaluation evaluation.Evaluation
	IsFinal    bool

	// QuestionNumber is the 1-based number of the next question.
	QuestionNumber int
}

// Summary describes interview progress.
type Summary struct {
	TotalQuestions     int
	MaxQuestions       int
	ProgressPercentage float64
	JobProfile         profile.JobProfile
	Exchanges          []conversation.Exchange
}

// Option configures a Session.
type Option func(*Session)

// WithMaxQuestions overrides the question budget derived from the profile
// duration. Values below 1 are ignored.
func WithMaxQuestions(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxOverride = n
		}
	}
}

// Session is one interview. It is not safe for concurrent use.
type Session struct {
	deps        Deps
	log         *zap.Logger
	maxOverride int

	id       string
	state    State
	profile  profile.JobProfile
	conv     *conversation.State
	first    string
	question string
	report   *report.Report
}

// New creates a session in the NotStarted state.
func New(deps Deps, opts ...Option) *Session {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	s := &Session{deps: deps, log: logger.OrNop(deps.Log)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates p, generates the opening question and moves the session
// to InProgress.
func (s *Session) Start(ctx context.Context, p profile.JobProfile) error {
	if s.state != StateNotStarted {
		return ErrAlreadyStarted
	}

	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return err
	}

	maxQuestions := p.MaxQuestions()
	if s.maxOverride > 0 {
		maxQuestions = s.maxOverride
	}

	s.id = uuid.NewString()
	s.profile = p
	s.conv = conversation.New(maxQuestions, conversation.WithClock(s.deps.Clock))
	s.log = logger.WithFields(logger.OrNop(s.deps.Log), zap.String(logger.FieldSession, s.id))

	ctx = llm.WithSession(ctx, s.id)
	s.first = s.deps.Generator.Opening(ctx, p)
	s.question = s.first
	s.state = StateInProgress

	s.log.Info("interview started",
		zap.String("position", p.Title),
		zap.Int("max_questions", maxQuestions),
	)
	s.recordEvent(ctx, store.ActionStart, "")
	return nil
}

// FirstQuestion returns the opening question, or "" before Start.
func (s *Session) FirstQuestion() string { return s.first }

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() string { return s.question }

// ProcessResponse evaluates the answer to the current question, records
// the exchange and, unless the interview is now over, asks the next
// question. Generation failures never surface here; only lifecycle
// errors do.
func (s *Session) ProcessResponse(ctx context.Context, text string) (Turn, error) {
	return s.answer(ctx, text, false)
}

// Skip records SkipResponse as the answer to the current question.
func (s *Session) Skip(ctx context.Context) (Turn, error) {
	return s.answer(ctx, SkipResponse, true)
}

func (s *Session) answer(ctx context.Context, text string, skipped bool) (Turn, error) {
	switch s.state {
	case StateNotStarted:
		return Turn{}, ErrNotStarted
	case StateCompleted:
		return Turn{}, ErrCompleted
	}

	ctx = llm.WithSession(ctx, s.id)
	turn := s.conv.Len()
	question := s.question

	ev := s.deps.Evaluator.Evaluate(ctx, question, text, s.profile)
	if _, err := s.conv.Append(question, text, ev, skipped); err != nil {
		return Turn{}, err
	}

	out := Turn{
		Evaluation:     ev,
		IsFinal:        s.conv.Completed(),
		QuestionNumber: s.conv.Len() + 1,
	}

	s.log.Debug("response evaluated",
		zap.Int("question_number", turn+1),
		zap.Int("score", ev.Score),
		zap.Bool("skipped", skipped),
	)

	if out.IsFinal {
		s.question = ""
		s.complete(ctx)
		return out, nil
	}

	out.Question = s.deps.Generator.Next(ctx, questiongen.NextInput{
		Profile:        s.profile,
		Question:       question,
		Response:       text,
		Evaluation:     ev,
		PriorQuestions: s.conv.Questions(),
		Turn:           turn,
		MaxQuestions:   s.conv.MaxQuestions(),
	})
	s.question = out.Question
	return out, nil
}

// End finishes the interview early. Ending a completed interview is a
// no-op.
func (s *Session) End(ctx context.Context) error {
	switch s.state {
	case StateNotStarted:
		return ErrNotStarted
	case StateCompleted:
		return nil
	}

	s.conv.Close()
	s.question = ""
	s.complete(llm.WithSession(ctx, s.id))
	return nil
}

func (s *Session) complete(ctx context.Context) {
	s.state = StateCompleted
	st := s.conv.Stats()
	s.log.Info("interview completed",
		zap.Int("questions_asked", st.TotalExchanges),
		zap.Float64("average_score", st.AverageScore),
		zap.String("trend", st.Trend),
	)
	s.recordEvent(ctx, store.ActionComplete, "")
}

// Report synthesizes the final report. It is generated once and cached.
func (s *Session) Report(ctx context.Context) (*report.Report, error) {
	if s.state != StateCompleted {
		return nil, ErrNotCompleted
	}
	if s.report != nil {
		return s.report, nil
	}

	ctx = llm.WithSession(ctx, s.id)
	s.report = s.deps.Synthesizer.Synthesize(ctx, s.conv.Export(), s.profile)
	s.recordEvent(ctx, store.ActionReport, string(s.report.Recommendation))
	return s.report, nil
}

// Reset discards the profile and conversation and returns the session to
// NotStarted.
func (s *Session) Reset() {
	s.id = ""
	s.state = StateNotStarted
	s.profile = profile.JobProfile{}
	s.conv = nil
	s.first = ""
	s.question = ""
	s.report = nil
	s.log = logger.OrNop(s.deps.Log)
}

func (s *Session) State() State { return s.state }

func (s *Session) ID() string { return s.id }

// Profile returns the normalized profile the session was started with.
func (s *Session) Profile() profile.JobProfile { return s.profile }

// Summary reports progress. Before Start it is the zero Summary.
func (s *Session) Summary() Summary {
	if s.conv == nil {
		return Summary{}
	}

	total, maxQ := s.conv.Len(), s.conv.MaxQuestions()
	progress := 0.0
	if maxQ > 0 {
		progress = min(float64(total)/float64(maxQ)*100, 100)
	}

	return Summary{
		TotalQuestions:     total,
		MaxQuestions:       maxQ,
		ProgressPercentage: progress,
		JobProfile:         s.profile,
		Exchanges:          s.conv.History(),
	}
}

// Stats returns the running conversation statistics.
func (s *Session) Stats() conversation.Stats {
	if s.conv == nil {
		return conversation.Stats{Trend: conversation.TrendStable, Duration: conversation.FormatDuration(0)}
	}
	return s.conv.Stats()
}

// Export snapshots the conversation for reporting.
func (s *Session) Export() conversation.Export {
	if s.conv == nil {
		return conversation.Export{}
	}
	return s.conv.Export()
}

func (s *Session) recordEvent(ctx context.Context, action, recommendation string) {
	if s.deps.EventRepo == nil {
		return
	}

	st := s.conv.Stats()
	err := s.deps.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      s.id,
		Action:         action,
		Position:       s.profile.Title,
		CandidateName:  s.profile.CandidateName,
		QuestionsAsked: st.TotalExchanges,
		MaxQuestions:   s.conv.MaxQuestions(),
		AverageScore:   st.AverageScore,
		Recommendation: recommendation,
		DurationSecs:   int(s.conv.Elapsed() / time.Second),
	})
	if err != nil {
		s.log.Warn("failed to record session event", zap.String("action", action), zap.Error(err))
	}
}
