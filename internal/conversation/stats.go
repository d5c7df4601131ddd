package conversation

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Score trends.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// trendThreshold is the minimum change in half-means to call a trend.
const trendThreshold = 0.5

// Stats are derived from the exchanges at the time of the call.
type Stats struct {
	TotalExchanges        int     `json:"total_questions"`
	AverageScore          float64 `json:"average_score"`
	HighestScore          int     `json:"highest_score"`
	LowestScore           int     `json:"lowest_score"`
	Trend                 string  `json:"score_trend"`
	Duration              string  `json:"duration"`
	DurationMinutes       int     `json:"duration_minutes"`
	TotalCandidateWords   int     `json:"total_candidate_words"`
	AverageResponseLength int     `json:"average_response_length"`
}

// Stats computes the current statistics.
func (s *State) Stats() Stats {
	scores := s.Scores()
	elapsed := s.Elapsed()

	st := Stats{
		TotalExchanges:  len(s.exchanges),
		AverageScore:    AverageScore(scores),
		Trend:           Trend(scores),
		Duration:        FormatDuration(elapsed),
		DurationMinutes: int(elapsed / time.Minute),
	}
	if len(scores) > 0 {
		st.HighestScore, st.LowestScore = scores[0], scores[0]
		for _, sc := range scores[1:] {
			st.HighestScore = max(st.HighestScore, sc)
			st.LowestScore = min(st.LowestScore, sc)
		}
	}

	for _, ex := range s.exchanges {
		st.TotalCandidateWords += len(strings.Fields(ex.Response))
	}
	if n := len(s.exchanges); n > 0 {
		st.AverageResponseLength = st.TotalCandidateWords / n
	}
	return st
}

// Elapsed is the wall-clock time since the conversation started.
func (s *State) Elapsed() time.Duration {
	return s.now().Sub(s.startTime)
}

// AverageScore is the mean of scores rounded half to even at one decimal,
// or 0 when there are none.
func AverageScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	return math.RoundToEven(mean(scores)*10) / 10
}

// Trend compares the mean of the first half of scores with the second.
// For odd counts the middle score belongs to the second half.
func Trend(scores []int) string {
	if len(scores) < 2 {
		return TrendStable
	}

	mid := len(scores) / 2
	first, second := mean(scores[:mid]), mean(scores[mid:])

	switch {
	case second > first+trendThreshold:
		return TrendImproving
	case second < first-trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// FormatDuration renders d as "N sec", "N min" or "Hh Mm".
func FormatDuration(d time.Duration) string {
	total := max(int(d/time.Second), 0)

	switch {
	case total < 60:
		return fmt.Sprintf("%d sec", total)
	case total < 3600:
		return fmt.Sprintf("%d min", total/60)
	default:
		return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
	}
}

func mean(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
