// Package report synthesizes the final interview evaluation and renders it
// as JSON or plain text.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/intervue/internal/conversation"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/logger"
	"github.com/abhisek/intervue/internal/profile"
)

// Purpose labels report requests in the audit log.
const Purpose = "report"

// dateLayout is the interview date format in report metadata.
const dateLayout = "2006-01-02"

// Synthesizer turns a finished conversation into a Report.
type Synthesizer struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
	now      func() time.Time
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithClock overrides the time source used for report metadata.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// New creates a Synthesizer. log may be nil.
func New(provider llm.Provider, cfg Config, log *zap.Logger, opts ...Option) *Synthesizer {
	s := &Synthesizer{provider: provider, config: cfg, log: logger.OrNop(log), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft asks the provider for a report and validates it. The returned
// report has no metadata. Failures are *ReportSynthesisError.
func (s *Synthesizer) Draft(ctx context.Context, exp conversation.Export, p profile.JobProfile) (*Report, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalysisPrompt(exp, p, s.config)},
		},
		Schema:      ReportSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	var text string
	if err == nil {
		text = resp.Text()
	} else if rejected, ok := llm.RejectedContent(err); ok {
		// Models often wrap the object in prose.
		text = rejected
	} else {
		return nil, &ReportSynthesisError{Err: llm.Classify(err)}
	}

	r, err := Parse(text)
	if err != nil {
		return nil, &ReportSynthesisError{Err: err}
	}
	return r, nil
}

// Synthesize always returns a complete report. Malformed output yields the
// basic report; an unreachable service yields the fallback report carrying
// an error note. Metadata is filled from p and exp in every case.
func (s *Synthesizer) Synthesize(ctx context.Context, exp conversation.Export, p profile.JobProfile) *Report {
	r, err := s.Draft(ctx, exp, p)
	if err != nil {
		var mal *llm.MalformedOutputError
		if errors.As(err, &mal) {
			s.log.Warn("report output rejected, using basic report", zap.Error(err))
			r = BasicReport()
		} else {
			s.log.Warn("report synthesis unavailable, using fallback report", zap.Error(err))
			r = FallbackReport(exp.Statistics, cause(err))
		}
	}

	now := s.now()
	r.Metadata = Metadata{
		Position:       p.Title,
		CandidateName:  p.CandidateName,
		InterviewDate:  now.Format(dateLayout),
		QuestionsAsked: exp.Statistics.TotalExchanges,
		AverageScore:   exp.Statistics.AverageScore,
	}
	r.GeneratedAt = now
	return r
}

// Parse extracts the JSON object spanning the first '{' to the last '}'
// of text and validates it against ReportSchema.
func Parse(text string) (*Report, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, &llm.MalformedOutputError{Content: text, Err: errors.New("no JSON object found")}
	}
	body := text[start : end+1]

	if err := llm.ValidateJSON(ReportSchema, json.RawMessage(body)); err != nil {
		return nil, &llm.MalformedOutputError{Content: text, Err: err}
	}

	var r Report
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, &llm.MalformedOutputError{Content: text, Err: fmt.Errorf("decode report: %w", err)}
	}

	r.Metadata = Metadata{}
	r.GeneratedAt = time.Time{}
	r.ErrorNote = ""
	return &r, nil
}

// BasicReport is used when the service answered with unusable output.
func BasicReport() *Report {
	return &Report{
		ExecutiveSummary:    "Interview completed successfully with standard evaluation.",
		OverallScore:        6,
		Strengths:           []string{"Communication skills", "Technical engagement"},
		AreasForImprovement: []string{"More specific examples needed", "Technical depth"},
		TechnicalAssessment: &TechnicalAssessment{
			TechnicalKnowledge:     6,
			ProblemSolving:         6,
			TechnicalCommunication: 6,
		},
		SoftSkillsAssessment: &SoftSkillsAssessment{
			Communication: 6,
			Adaptability:  6,
			CulturalFit:   6,
		},
		Recommendation: FurtherInterview,
		Reasoning:      "Additional assessment needed for final determination.",
	}
}

// FallbackReport is used when the service could not be reached at all.
func FallbackReport(st conversation.Stats, cause error) *Report {
	overall := st.AverageScore
	if overall == 0 {
		overall = 6
	}

	note := "unknown error"
	if cause != nil {
		note = cause.Error()
	}

	return &Report{
		ExecutiveSummary:    fmt.Sprintf("Interview completed with %d questions.", st.TotalExchanges),
		OverallScore:        overall,
		Strengths:           []string{"Completed interview process", "Engaged with questions"},
		AreasForImprovement: []string{"Detailed assessment needed"},
		Recommendation:      FurtherInterview,
		Reasoning:           "Standard evaluation completed.",
		ErrorNote:           "Fallback report due to: " + note,
	}
}

// cause strips the synthesis and classification wrappers.
func cause(err error) error {
	var rse *ReportSynthesisError
	if errors.As(err, &rse) {
		err = rse.Err
	}
	var gen *llm.GenerationServiceError
	if errors.As(err, &gen) && gen.Err != nil {
		err = gen.Err
	}
	return err
}
