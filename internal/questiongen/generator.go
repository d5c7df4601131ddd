// Package questiongen produces the opening and follow-up interview questions.
package questiongen

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/intervue/internal/evaluation"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/logger"
	"github.com/abhisek/intervue/internal/profile"
)

// Request purposes recorded in the audit log.
const (
	PurposeOpening = "question-opening"
	PurposeNext    = "question-next"
)

var errEmptyQuestion = errors.New("empty question text")

// NextInput is the context used to pick the next question.
type NextInput struct {
	Profile    profile.JobProfile
	Question   string
	Response   string
	Evaluation evaluation.Evaluation

	// PriorQuestions are the questions already asked, oldest first.
	PriorQuestions []string

	// Turn is the zero-based index of the exchange just answered.
	Turn int

	MaxQuestions int
}

// Generator produces interview questions. Both methods always return a
// usable question; generation failures fall back to fixed text.
type Generator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates a Generator. log may be nil.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Generator {
	return &Generator{provider: provider, config: cfg, log: logger.OrNop(log)}
}

// Opening returns the first question for the profile.
func (g *Generator) Opening(ctx context.Context, p profile.JobProfile) string {
	ctx = llm.WithPurpose(ctx, PurposeOpening)

	req := llm.Request{
		System: openingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOpeningMessage(p)},
		},
		MaxTokens:   g.config.OpeningMaxTokens,
		Temperature: g.config.OpeningTemperature,
	}

	q, err := g.generate(ctx, req)
	if err != nil {
		g.log.Warn("opening question unavailable, using fallback", zap.Error(err))
		return OpeningFallback(p.Title)
	}
	return q
}

// Next returns the question that follows the exchange described by in.
func (g *Generator) Next(ctx context.Context, in NextInput) string {
	ctx = llm.WithPurpose(ctx, PurposeNext)

	req := llm.Request{
		System: nextSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNextMessage(in, g.config)},
		},
		MaxTokens:   g.config.NextMaxTokens,
		Temperature: g.config.NextTemperature,
	}

	q, err := g.generate(ctx, req)
	if err != nil {
		g.log.Warn("next question unavailable, using fallback",
			zap.Error(err),
			zap.Int("turn", in.Turn),
		)
		return FallbackQuestion(in.Turn)
	}
	return q
}

func (g *Generator) generate(ctx context.Context, req llm.Request) (string, error) {
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", llm.Classify(err)
	}

	q := cleanQuestion(resp.Text())
	if q == "" {
		return "", &llm.MalformedOutputError{Content: string(resp.Content), Err: errEmptyQuestion}
	}

	g.log.Debug("question generated", zap.String("question", logger.TruncateForLog(q, 120)))
	return q, nil
}

// cleanQuestion trims whitespace and a single pair of wrapping quotes.
func cleanQuestion(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
