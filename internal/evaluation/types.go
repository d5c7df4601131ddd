package evaluation

// Evaluation is the structured assessment of one candidate response.
type Evaluation struct {
	Score        int    `json:"score"`
	Feedback     string `json:"feedback"`
	Strengths    string `json:"strengths"`
	AreasToProbe string `json:"areas_to_probe"`
}

// MalformedFallback is returned when the service answered but its output
// could not be parsed or validated.
func MalformedFallback() Evaluation {
	return Evaluation{
		Score:        6,
		Feedback:     "Thank you for your response. I'd like to explore this topic further.",
		Strengths:    "Good communication",
		AreasToProbe: "Technical depth",
	}
}

// UnavailableFallback is returned when the service could not be reached.
func UnavailableFallback() Evaluation {
	return Evaluation{
		Score:        5,
		Feedback:     "I appreciate your response. Let's continue with the next question.",
		Strengths:    "Engagement with the question",
		AreasToProbe: "More detailed examples",
	}
}
