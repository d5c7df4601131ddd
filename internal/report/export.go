package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportJSON renders r as an indented JSON document.
func ExportJSON(r *Report) ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return b, nil
}

// ExportText renders r in the fixed plain-text layout.
func ExportText(r *Report) string {
	md := r.Metadata

	var b strings.Builder
	b.WriteString("INTERVIEW EVALUATION REPORT\n")
	b.WriteString("===========================\n\n")

	fmt.Fprintf(&b, "Candidate: %s\n", orDefault(md.CandidateName, "N/A"))
	fmt.Fprintf(&b, "Position: %s\n", orDefault(md.Position, "N/A"))
	fmt.Fprintf(&b, "Interview Date: %s\n", orDefault(md.InterviewDate, "N/A"))
	fmt.Fprintf(&b, "Questions Asked: %d\n", md.QuestionsAsked)

	score := "N/A"
	if r.OverallScore > 0 {
		score = FormatScore(r.OverallScore)
	}
	fmt.Fprintf(&b, "Overall Score: %s/10\n", score)

	section(&b, "EXECUTIVE SUMMARY", orDefault(r.ExecutiveSummary, "No summary available"))
	section(&b, "STRENGTHS", bullets(r.Strengths))
	section(&b, "AREAS FOR IMPROVEMENT", bullets(r.AreasForImprovement))
	section(&b, "RECOMMENDATION", orDefault(string(r.Recommendation), "No recommendation available"))
	section(&b, "REASONING", orDefault(r.Reasoning, "No reasoning provided"))

	return b.String()
}

func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", title, strings.Repeat("-", len(title)), body)
}

func bullets(items []string) string {
	if len(items) == 0 {
		return "None listed"
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
