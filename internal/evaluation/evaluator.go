// Package evaluation scores candidate answers with an LLM and validates the
// result before it is trusted.
package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/logger"
	"github.com/abhisek/intervue/internal/profile"
)

// Purpose labels evaluation requests in the audit log.
const Purpose = "evaluation"

// Evaluator scores candidate answers.
type Evaluator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates an Evaluator. log may be nil.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Evaluator {
	return &Evaluator{provider: provider, config: cfg, log: logger.OrNop(log)}
}

// Assess asks the provider to score response and validates the output.
// On failure the error is a *llm.GenerationServiceError or a
// *llm.MalformedOutputError and the returned Evaluation is zero.
func (e *Evaluator) Assess(ctx context.Context, question, response string, p profile.JobProfile) (Evaluation, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(question, response, p)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		// A fenced object fails provider-side validation but parses here.
		if text, ok := llm.RejectedContent(err); ok {
			return Parse(text)
		}
		return Evaluation{}, llm.Classify(err)
	}

	return Parse(resp.Text())
}

// Evaluate is Assess with failures replaced by the matching fallback
// Evaluation. It never fails.
func (e *Evaluator) Evaluate(ctx context.Context, question, response string, p profile.JobProfile) Evaluation {
	ev, err := e.Assess(ctx, question, response, p)
	if err == nil {
		return ev
	}

	var mal *llm.MalformedOutputError
	if errors.As(err, &mal) {
		e.log.Warn("evaluation output rejected, using fallback",
			zap.Error(err),
			zap.String("content", logger.TruncateForLog(mal.Content, 200)),
		)
		return MalformedFallback()
	}

	e.log.Warn("evaluation unavailable, using fallback", zap.Error(err))
	return UnavailableFallback()
}

// Parse validates raw evaluation output. The text must be a single JSON
// object, optionally inside a markdown code fence, whose score is an
// integral number in [1,10]. Scores are never clamped.
func Parse(text string) (Evaluation, error) {
	body := stripCodeFence(text)
	if body == "" {
		return Evaluation{}, &llm.MalformedOutputError{Content: text, Err: errors.New("empty output")}
	}

	if err := llm.ValidateJSON(EvaluationSchema, json.RawMessage(body)); err != nil {
		return Evaluation{}, &llm.MalformedOutputError{Content: text, Err: err}
	}

	var out struct {
		Score        float64 `json:"score"`
		Feedback     string  `json:"feedback"`
		Strengths    string  `json:"strengths"`
		AreasToProbe string  `json:"areas_to_probe"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return Evaluation{}, &llm.MalformedOutputError{Content: text, Err: fmt.Errorf("decode evaluation: %w", err)}
	}

	return Evaluation{
		Score:        int(out.Score),
		Feedback:     strings.TrimSpace(out.Feedback),
		Strengths:    strings.TrimSpace(out.Strengths),
		AreasToProbe: strings.TrimSpace(out.AreasToProbe),
	}, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
