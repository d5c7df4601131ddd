package profile

import "strings"

// Level is the seniority of the position.
type Level string

const (
	LevelEntry  Level = "entry"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

// Levels lists all levels in display order.
var Levels = []Level{LevelEntry, LevelMid, LevelSenior}

// Label returns the human-readable level description used in prompts.
func (l Level) Label() string {
	switch l {
	case LevelEntry:
		return "Entry Level (0-2 years)"
	case LevelMid:
		return "Mid Level (2-5 years)"
	case LevelSenior:
		return "Senior Level (5+ years)"
	default:
		return string(l)
	}
}

// InterviewType is the focus of the interview.
type InterviewType string

const (
	TypeTechnical  InterviewType = "technical"
	TypeBehavioral InterviewType = "behavioral"
	TypeMixed      InterviewType = "mixed"
)

// Types lists all interview types in display order.
var Types = []InterviewType{TypeTechnical, TypeBehavioral, TypeMixed}

func (t InterviewType) Label() string {
	switch t {
	case TypeTechnical:
		return "Technical Focus"
	case TypeBehavioral:
		return "Behavioral Focus"
	case TypeMixed:
		return "Mixed (Technical + Behavioral)"
	default:
		return string(t)
	}
}

// Duration selects how many questions the interview asks.
type Duration string

const (
	DurationQuick         Duration = "quick"
	DurationStandard      Duration = "standard"
	DurationComprehensive Duration = "comprehensive"
)

// Durations lists all durations in display order.
var Durations = []Duration{DurationQuick, DurationStandard, DurationComprehensive}

// DefaultMaxQuestions applies to any unrecognized duration.
const DefaultMaxQuestions = 10

// MaxQuestions maps the duration, given as a key or a label, to a question
// budget.
func (d Duration) MaxQuestions() int {
	if parsed, ok := ParseDuration(string(d)); ok {
		d = parsed
	}
	switch d {
	case DurationQuick:
		return 8
	case DurationStandard:
		return 12
	case DurationComprehensive:
		return 15
	default:
		return DefaultMaxQuestions
	}
}

func (d Duration) Label() string {
	switch d {
	case DurationQuick:
		return "Quick (5-8 questions)"
	case DurationStandard:
		return "Standard (8-12 questions)"
	case DurationComprehensive:
		return "Comprehensive (12-15 questions)"
	default:
		return string(d)
	}
}

// ParseLevel accepts a level key or its label, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	for _, l := range Levels {
		if matches(s, string(l), l.Label()) {
			return l, true
		}
	}
	return "", false
}

// ParseType accepts an interview type key or its label, case-insensitively.
func ParseType(s string) (InterviewType, bool) {
	for _, t := range Types {
		if matches(s, string(t), t.Label()) {
			return t, true
		}
	}
	return "", false
}

// ParseDuration accepts a duration key or its label, case-insensitively.
func ParseDuration(s string) (Duration, bool) {
	for _, d := range Durations {
		if matches(s, string(d), d.Label()) {
			return d, true
		}
	}
	return "", false
}

func matches(s, key, label string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, key) || strings.EqualFold(s, label)
}
