package report

import "fmt"

// ReportSynthesisError wraps a generation failure that happened while
// synthesizing a report. The wrapped error is a
// *llm.GenerationServiceError or a *llm.MalformedOutputError.
type ReportSynthesisError struct {
	Err error
}

func (e *ReportSynthesisError) Error() string {
	return fmt.Sprintf("report synthesis failed: %v", e.Err)
}

func (e *ReportSynthesisError) Unwrap() error { return e.Err }
