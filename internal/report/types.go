package report

import (
	"strconv"
	"time"
)

// Recommendation is the hiring verdict of a report.
type Recommendation string

const (
	StrongHire       Recommendation = "Strong Hire"
	Hire             Recommendation = "Hire"
	NoHire           Recommendation = "No Hire"
	FurtherInterview Recommendation = "Further Interview Required"
)

// Recommendations lists every valid recommendation.
var Recommendations = []Recommendation{StrongHire, Hire, NoHire, FurtherInterview}

// Valid reports whether r is one of the four recommendations.
func (r Recommendation) Valid() bool {
	for _, v := range Recommendations {
		if r == v {
			return true
		}
	}
	return false
}

// TechnicalAssessment holds the technical sub-scores (1-10).
type TechnicalAssessment struct {
	TechnicalKnowledge     float64 `json:"technical_knowledge"`
	ProblemSolving         float64 `json:"problem_solving"`
	TechnicalCommunication float64 `json:"technical_communication"`
}

// SoftSkillsAssessment holds the soft-skill sub-scores (1-10).
type SoftSkillsAssessment struct {
	Communication float64 `json:"communication"`
	Adaptability  float64 `json:"adaptability"`
	CulturalFit   float64 `json:"cultural_fit"`
}

// Metadata is derived from the profile and conversation, never from
// generated text.
type Metadata struct {
	Position       string  `json:"position"`
	CandidateName  string  `json:"candidate_name"`
	InterviewDate  string  `json:"interview_date,omitempty"`
	QuestionsAsked int     `json:"questions_asked"`
	AverageScore   float64 `json:"average_score"`
}

// Report is the final interview evaluation.
type Report struct {
	ExecutiveSummary     string                `json:"executive_summary"`
	OverallScore         float64               `json:"overall_score"`
	Strengths            []string              `json:"strengths"`
	AreasForImprovement  []string              `json:"areas_for_improvement"`
	TechnicalAssessment  *TechnicalAssessment  `json:"technical_assessment,omitempty"`
	SoftSkillsAssessment *SoftSkillsAssessment `json:"soft_skills_assessment,omitempty"`
	Recommendation       Recommendation        `json:"recommendation"`
	Reasoning            string                `json:"reasoning"`

	Metadata    Metadata  `json:"interview_metadata"`
	GeneratedAt time.Time `json:"report_generated_at,omitzero"`
	ErrorNote   string    `json:"error_note,omitempty"`
}

// FormatScore renders a score without trailing zeros ("7.5", "6").
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
