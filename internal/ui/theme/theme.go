package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, muted for long terminal transcripts.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Transcript
var (
	Interviewer = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Candidate = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Feedback = lipgloss.NewStyle().
			Foreground(TextDim).
			PaddingLeft(2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// ScoreColor maps an evaluation score (1-10) to a color: 8 and above is
// green, 6-7 amber, anything lower rose.
func ScoreColor(score float64) color.Color {
	switch {
	case score >= 8:
		return Success
	case score >= 6:
		return Accent
	default:
		return Error
	}
}

// Score styles a score in its band color.
func Score(score float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ScoreColor(score)).Bold(true)
}

// RecommendationColor maps a hiring recommendation to a color.
func RecommendationColor(rec string) color.Color {
	switch rec {
	case "Strong Hire", "Hire":
		return Success
	case "No Hire":
		return Error
	default:
		return Accent
	}
}
