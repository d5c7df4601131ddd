package questiongen

import "fmt"

// fallbackQuestions are asked in order when generation fails. Past the end
// of the list the last entry repeats.
var fallbackQuestions = []string{
	"Can you describe a challenging technical problem you've solved and walk me through your approach?",
	"How do you stay updated with the latest developments in your field?",
	"Tell me about a time when you had to work with a difficult team member. How did you handle it?",
	"What interests you most about this role and our company?",
	"Do you have any questions about the position or our team?",
}

// FallbackQuestion returns the fixed follow-up question for the given turn.
func FallbackQuestion(turn int) string {
	if turn < 0 {
		turn = 0
	}
	return fallbackQuestions[min(turn, len(fallbackQuestions)-1)]
}

// OpeningFallback returns the greeting used when the opening question
// cannot be generated.
func OpeningFallback(title string) string {
	return fmt.Sprintf("Hello! I'm excited to interview you for the %s position. "+
		"Can you start by telling me about your relevant experience and what interests you about this role?", title)
}
