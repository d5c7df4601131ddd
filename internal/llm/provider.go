package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider generates text or structured JSON from a prompt. Every step
// of an interview (question, evaluation, report) is one Generate call.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the provider asks for JSON matching it and validates the result.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	System   string
	Messages []Message

	// Schema requests structured output. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of the prompt.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response must conform to.
type Schema struct {
	// Name is a kebab-case identifier such as "response-evaluation". It is
	// the OpenAI schema name and the validator cache key, so it must be
	// unique per Definition.
	Name        string
	Description string
	Definition  map[string]any

	// Strict asks OpenAI for strict adherence, which requires every
	// property to be required and additionalProperties to be false.
	Strict bool
}

// Response is the model output.
type Response struct {
	// Content holds validated JSON for schema requests and the raw text
	// otherwise. Use Text for the latter.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that served the request.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response as plain text. Content that is a JSON string
// literal is unquoted; anything else is returned verbatim.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(r.Content))
}
