package report

import "github.com/abhisek/intervue/internal/llm"

func scoreProperty(desc string) map[string]any {
	return map[string]any{
		"type":        "number",
		"minimum":     1,
		"maximum":     10,
		"description": desc,
	}
}

func stringList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// ReportSchema is the JSON schema for a generated report, without metadata.
var ReportSchema = &llm.Schema{
	Name:        "interview-report",
	Description: "Structured evaluation of a finished interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"executive_summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence overall assessment",
			},
			"overall_score":         scoreProperty("Overall score from 1 to 10"),
			"strengths":             stringList("3-5 key strengths"),
			"areas_for_improvement": stringList("3-4 improvement areas"),
			"technical_assessment": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"technical_knowledge":     scoreProperty("Technical knowledge score"),
					"problem_solving":         scoreProperty("Problem solving score"),
					"technical_communication": scoreProperty("Technical communication score"),
				},
			},
			"soft_skills_assessment": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"communication": scoreProperty("Communication score"),
					"adaptability":  scoreProperty("Adaptability score"),
					"cultural_fit":  scoreProperty("Cultural fit score"),
				},
			},
			"recommendation": map[string]any{
				"type": "string",
				"enum": []any{
					string(StrongHire), string(Hire), string(NoHire), string(FurtherInterview),
				},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "2-3 sentences explaining the recommendation",
			},
		},
		"required": []any{"executive_summary", "overall_score", "recommendation"},
	},
}
