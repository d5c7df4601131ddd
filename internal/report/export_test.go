package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportText(t *testing.T) {
	r := BasicReport()
	r.Metadata = Metadata{
		Position:       "Backend Engineer",
		CandidateName:  "Ada",
		InterviewDate:  "2025-06-03",
		QuestionsAsked: 8,
		AverageScore:   7.5,
	}

	text := ExportText(r)

	for _, want := range []string{
		"INTERVIEW EVALUATION REPORT\n===========================\n",
		"Candidate: Ada\n",
		"Position: Backend Engineer\n",
		"Interview Date: 2025-06-03\n",
		"Questions Asked: 8\n",
		"Overall Score: 6/10\n",
		"\nEXECUTIVE SUMMARY\n-----------------\nInterview completed successfully with standard evaluation.\n",
		"\nSTRENGTHS\n---------\n- Communication skills\n- Technical engagement\n",
		"\nRECOMMENDATION\n--------------\nFurther Interview Required\n",
		"\nREASONING\n---------\nAdditional assessment needed for final determination.\n",
	} {
		assert.Contains(t, text, want)
	}

	assert.Less(t, strings.Index(text, "EXECUTIVE SUMMARY"), strings.Index(text, "RECOMMENDATION"))
	assert.Less(t, strings.Index(text, "RECOMMENDATION"), strings.Index(text, "REASONING"))
}

func TestExportText_MissingFields(t *testing.T) {
	text := ExportText(&Report{})

	assert.Contains(t, text, "Candidate: N/A\n")
	assert.Contains(t, text, "Position: N/A\n")
	assert.Contains(t, text, "Interview Date: N/A\n")
	assert.Contains(t, text, "Overall Score: N/A/10\n")
	assert.Contains(t, text, "No summary available")
	assert.Contains(t, text, "No recommendation available")
	assert.Contains(t, text, "No reasoning provided")
	assert.Contains(t, text, "None listed")
}

func TestExportJSON(t *testing.T) {
	r := FallbackReport(testExport(7, 8).Statistics, assert.AnError)
	r.Metadata = Metadata{Position: "Backend Engineer", CandidateName: "Ada", QuestionsAsked: 2, AverageScore: 7.5}

	raw, err := ExportJSON(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"executive_summary\"")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "Further Interview Required", doc["recommendation"])
	assert.Contains(t, doc, "interview_metadata")
	assert.Contains(t, doc, "error_note")
	assert.NotContains(t, doc, "technical_assessment")
	assert.NotContains(t, doc, "report_generated_at")

	md := doc["interview_metadata"].(map[string]any)
	assert.Equal(t, "Ada", md["candidate_name"])
	assert.EqualValues(t, 2, md["questions_asked"])
}

func TestExportJSON_GeneratedAt(t *testing.T) {
	r := BasicReport()
	r.GeneratedAt = time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC)

	raw, err := ExportJSON(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"report_generated_at": "2025-06-03T14:30:00Z"`)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "7.5", FormatScore(7.5))
	assert.Equal(t, "6", FormatScore(6))
}
