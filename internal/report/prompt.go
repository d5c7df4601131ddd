package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/intervue/internal/conversation"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/profile"
)

const systemPrompt = "You are an expert technical interviewer and HR analyst. " +
	"Provide thorough, fair, and professional interview evaluations."

const outputInstructions = `Provide a structured analysis in JSON format with these exact fields:

{
  "executive_summary": "2-3 sentence overall assessment",
  "overall_score": <number from 1-10>,
  "strengths": ["List of 3-5 key strengths"],
  "areas_for_improvement": ["List of 3-4 improvement areas"],
  "technical_assessment": {
    "technical_knowledge": <1-10 score>,
    "problem_solving": <1-10 score>,
    "technical_communication": <1-10 score>
  },
  "soft_skills_assessment": {
    "communication": <1-10 score>,
    "adaptability": <1-10 score>,
    "cultural_fit": <1-10 score>
  },
  "recommendation": "one of: 'Strong Hire', 'Hire', 'No Hire', 'Further Interview Required'",
  "reasoning": "2-3 sentences explaining the recommendation"
}

Return ONLY the JSON.`

func buildAnalysisPrompt(exp conversation.Export, p profile.JobProfile, cfg Config) string {
	var b strings.Builder
	st := exp.Statistics

	b.WriteString("Analyze this interview and provide a comprehensive evaluation report.\n\n")

	b.WriteString("INTERVIEW CONTEXT:\n")
	fmt.Fprintf(&b, "Position: %s\n", p.Title)
	fmt.Fprintf(&b, "Experience Level: %s\n", p.Level.Label())
	fmt.Fprintf(&b, "Interview Type: %s\n", p.Type.Label())
	fmt.Fprintf(&b, "Candidate: %s\n\n", p.CandidateName)

	b.WriteString("JOB REQUIREMENTS:\n")
	if p.Description != "" {
		b.WriteString(p.Description)
	} else {
		b.WriteString("No job description provided")
	}
	b.WriteString("\n\n")

	b.WriteString("INTERVIEW STATISTICS:\n")
	fmt.Fprintf(&b, "- Total Questions: %d\n", st.TotalExchanges)
	fmt.Fprintf(&b, "- Average Score: %s/10\n", FormatScore(st.AverageScore))
	fmt.Fprintf(&b, "- Highest Score: %d/10\n", st.HighestScore)
	fmt.Fprintf(&b, "- Lowest Score: %d/10\n", st.LowestScore)
	fmt.Fprintf(&b, "- Score Trend: %s\n\n", st.Trend)

	b.WriteString("CONVERSATION DETAILS:\n")
	for i, ex := range exp.History {
		fmt.Fprintf(&b, "\nQuestion %d: %s\n", i+1, llm.Clip(ex.Question, cfg.QuestionChars))
		fmt.Fprintf(&b, "Response: %s\n", llm.Clip(ex.Response, cfg.ResponseChars))
		fmt.Fprintf(&b, "Score: %d/10\n", ex.Score)
	}
	b.WriteString("\n")

	b.WriteString(outputInstructions)
	return b.String()
}
