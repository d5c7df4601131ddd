package llm

import (
	"errors"
	"fmt"
)

// GenerationServiceError reports that the provider could not produce any
// output: it was unreachable, unauthorized, rate limited or timed out.
type GenerationServiceError struct {
	Err error
}

func (e *GenerationServiceError) Error() string {
	return fmt.Sprintf("generation service error: %v", e.Err)
}

func (e *GenerationServiceError) Unwrap() error { return e.Err }

// MalformedOutputError reports that the provider responded but the output
// failed parsing, schema or range validation.
type MalformedOutputError struct {
	Content string
	Err     error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// Classify sorts an error returned by Generate into a
// *GenerationServiceError or a *MalformedOutputError. Errors that are
// already classified are returned unchanged; nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var gen *GenerationServiceError
	var mal *MalformedOutputError
	if errors.As(err, &gen) || errors.As(err, &mal) {
		return err
	}

	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return &MalformedOutputError{Content: string(inv.Content), Err: err}
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &MalformedOutputError{Content: string(maxTok.Content), Err: err}
	}

	return &GenerationServiceError{Err: err}
}

// RejectedContent returns the reply a provider produced when it failed
// schema validation. Callers with their own tolerant parsers can recover
// a wrapped or fenced object from it. Truncated replies are not returned.
func RejectedContent(err error) (string, bool) {
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) || len(inv.Content) == 0 {
		return "", false
	}
	return string(inv.Content), true
}
