package evaluation

import (
	"fmt"
	"strings"

	"github.com/abhisek/intervue/internal/profile"
)

const systemPrompt = `You are an expert interviewer evaluating a single candidate answer.

Evaluation criteria:
1. Technical accuracy (if applicable)
2. Communication clarity and structure
3. Completeness and depth of answer
4. Relevant experience demonstration
5. Problem-solving approach (if applicable)

Score guidelines:
- 8-10: Excellent response with strong technical knowledge and clear communication
- 6-7: Good response with some strong points but room for improvement
- 4-5: Average response with basic understanding but lacking depth
- 1-3: Weak response with significant gaps or unclear communication

Respond with exactly this JSON object and nothing else:
{"score": <integer 1-10>, "feedback": "<1-2 sentences>", "strengths": "<key strengths>", "areas_to_probe": "<areas to explore further>"}`

// buildUserMessage describes the exchange being evaluated.
func buildUserMessage(question, response string, p profile.JobProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Position: %s\n", p.Title)
	fmt.Fprintf(&b, "Level: %s\n", p.Level.Label())
	fmt.Fprintf(&b, "Interview type: %s\n", p.Type.Label())

	fmt.Fprintf(&b, "\nQuestion: %q\n", question)
	fmt.Fprintf(&b, "Candidate response: %q\n", response)

	return b.String()
}
