package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/intervue/internal/evaluation"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/questiongen"
	"github.com/abhisek/intervue/internal/report"
	"github.com/abhisek/intervue/internal/store"
)

// Deps are the collaborators a Session drives.
type Deps struct {
	Generator   *questiongen.Generator
	Evaluator   *evaluation.Evaluator
	Synthesizer *report.Synthesizer

	// EventRepo records lifecycle events (nil disables).
	EventRepo store.EventRepo

	Log   *zap.Logger
	Clock func() time.Time
}

// NewDeps wires every component to a single provider with default
// settings.
func NewDeps(provider llm.Provider, repo store.EventRepo, log *zap.Logger) Deps {
	return Deps{
		Generator:   questiongen.New(provider, questiongen.DefaultConfig(), log),
		Evaluator:   evaluation.New(provider, evaluation.DefaultConfig(), log),
		Synthesizer: report.New(provider, report.DefaultConfig(), log),
		EventRepo:   repo,
		Log:         log,
	}
}
