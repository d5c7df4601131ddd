package report

// Config controls the behavior of the Synthesizer.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// QuestionChars truncates each question in the conversation summary.
	QuestionChars int

	// ResponseChars truncates each response in the conversation summary.
	ResponseChars int
}

// DefaultConfig returns the recommended synthesis settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     2000,
		Temperature:   0.3,
		QuestionChars: 200,
		ResponseChars: 300,
	}
}
