package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/profile"
)

const openingSystemPrompt = `You are an experienced interviewer opening a job interview.

Generate an engaging opening question that:
1. Is appropriate for the candidate's experience level
2. Relates to the job requirements and responsibilities
3. Sets a professional, welcoming tone
4. Either asks about their background OR starts with a relevant technical/behavioral question
5. Follows interview best practices

Examples of good opening questions:
- For technical: "Can you walk me through your experience with [relevant technology from job description]?"
- For behavioral: "Tell me about a challenging project you've worked on that relates to this role."
- For background: "I'd love to hear about your background and what interests you about this position."

Return ONLY the question text, no additional formatting or explanations.`

const nextSystemPrompt = `You are an experienced interviewer in the middle of a job interview.

Generate the next question that:
1. Builds naturally on the conversation flow
2. Explores different aspects of the candidate's qualifications
3. Is appropriate for the candidate's experience level
4. Matches the interview style
5. Avoids repeating previous topics

Question types to consider:
- Technical: code problems, system design, debugging scenarios
- Behavioral: STAR method situations, teamwork, problem-solving
- Experience: deep dives into past projects and achievements
- Situational: how they would handle specific job-related scenarios

Return ONLY the question text, no additional formatting.`

func buildOpeningMessage(p profile.JobProfile) string {
	var b strings.Builder

	b.WriteString("Interview details:\n")
	fmt.Fprintf(&b, "- Position: %s\n", p.Title)
	fmt.Fprintf(&b, "- Experience level: %s\n", p.Level.Label())
	fmt.Fprintf(&b, "- Interview type: %s\n", p.Type.Label())
	fmt.Fprintf(&b, "- Candidate: %s\n", p.CandidateName)

	if p.Description != "" {
		fmt.Fprintf(&b, "\nJob description:\n%s\n", p.Description)
	}

	return b.String()
}

func buildNextMessage(in NextInput, cfg Config) string {
	var b strings.Builder
	p := in.Profile

	fmt.Fprintf(&b, "Position: %s\n", p.Title)

	b.WriteString("\nCurrent status:\n")
	fmt.Fprintf(&b, "- Question number: %d of %d\n", in.Turn+1, in.MaxQuestions)
	fmt.Fprintf(&b, "- Interview type: %s\n", p.Type.Label())
	fmt.Fprintf(&b, "- Experience level: %s\n", p.Level.Label())

	fmt.Fprintf(&b, "\nPrevious question: %q\n", in.Question)
	fmt.Fprintf(&b, "Candidate response: %q\n", llm.Clip(in.Response, cfg.ResponseChars))
	fmt.Fprintf(&b, "Evaluation score: %d/10\n", in.Evaluation.Score)
	fmt.Fprintf(&b, "Areas to probe: %s\n", in.Evaluation.AreasToProbe)

	if topics := recentTopics(in.PriorQuestions, cfg); topics != "" {
		fmt.Fprintf(&b, "\nPrevious topics covered: %s\n", topics)
	}

	if p.Description != "" {
		fmt.Fprintf(&b, "\nJob requirements:\n%s\n", llm.Clip(p.Description, cfg.DescriptionChars))
	}

	b.WriteString("\n")
	if isClosing(in.Turn, in.MaxQuestions) {
		b.WriteString("This is near the end of the interview: ask a strong closing question.\n")
	} else {
		b.WriteString("Maintain good interview momentum.\n")
	}

	return b.String()
}

// recentTopics joins the last MaxPriorQuestions questions, each truncated.
func recentTopics(prior []string, cfg Config) string {
	if len(prior) == 0 || cfg.MaxPriorQuestions <= 0 {
		return ""
	}
	if len(prior) > cfg.MaxPriorQuestions {
		prior = prior[len(prior)-cfg.MaxPriorQuestions:]
	}
	parts := make([]string, len(prior))
	for i, q := range prior {
		parts[i] = llm.Clip(q, cfg.PriorQuestionChars)
	}
	return strings.Join(parts, "; ")
}

func isClosing(turn, maxQuestions int) bool {
	return turn >= maxQuestions-2
}
