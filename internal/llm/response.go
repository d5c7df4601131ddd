package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// errAuthRejected marks a provider refusing the configured credentials.
var errAuthRejected = errors.New("authentication rejected")

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// finish turns raw provider output into a Response. Structured output is
// validated against the request schema; a structured response cut off by
// the token limit is reported as ErrMaxTokensExceeded since it cannot be
// complete JSON. Truncated free text is returned as is.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

// statusError maps the HTTP status of a failed provider call onto the
// package error types.
func statusError(status int, err error) error {
	switch status {
	case http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ErrProviderUnavailable{Err: fmt.Errorf("%w: %w", errAuthRejected, err)}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names are passed through.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
