package questiongen

// Config controls the behavior of the Generator.
type Config struct {
	// OpeningMaxTokens is the token budget for the opening question.
	OpeningMaxTokens int

	// OpeningTemperature controls randomness of the opening question.
	OpeningTemperature float64

	// NextMaxTokens is the token budget for follow-up questions.
	NextMaxTokens int

	// NextTemperature controls randomness of follow-up questions.
	NextTemperature float64

	// MaxPriorQuestions is the number of recent questions included in the
	// prompt to steer away from repeated topics.
	MaxPriorQuestions int

	// PriorQuestionChars truncates each prior question in the prompt.
	PriorQuestionChars int

	// ResponseChars truncates the candidate response in the prompt.
	ResponseChars int

	// DescriptionChars truncates the job description in the prompt.
	DescriptionChars int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		OpeningMaxTokens:   200,
		OpeningTemperature: 0.7,
		NextMaxTokens:      250,
		NextTemperature:    0.8,
		MaxPriorQuestions:  3,
		PriorQuestionChars: 100,
		ResponseChars:      500,
		DescriptionChars:   800,
	}
}
