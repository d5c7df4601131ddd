// Package profile defines the job profile an interview is conducted against.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultCandidateName is used when no candidate name is supplied.
const DefaultCandidateName = "Candidate"

// ErrInvalidProfile is wrapped by every validation failure.
var ErrInvalidProfile = errors.New("invalid job profile")

var validate = validator.New()

// JobProfile describes the position being interviewed for.
type JobProfile struct {
	Title         string        `json:"title" mapstructure:"title" validate:"required"`
	Level         Level         `json:"level" mapstructure:"level" validate:"required,oneof=entry mid senior"`
	Type          InterviewType `json:"type" mapstructure:"type" validate:"required,oneof=technical behavioral mixed"`
	Duration      Duration      `json:"duration" mapstructure:"duration"`
	Description   string        `json:"description" mapstructure:"description"`
	CandidateName string        `json:"candidate_name" mapstructure:"candidate-name"`
}

// WithDefaults returns a normalized copy: surrounding whitespace is trimmed,
// enum values given as display labels are mapped to their keys, the
// duration defaults to Standard and the candidate name to "Candidate".
func (p JobProfile) WithDefaults() JobProfile {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.CandidateName = strings.TrimSpace(p.CandidateName)
	if p.CandidateName == "" {
		p.CandidateName = DefaultCandidateName
	}

	if l, ok := ParseLevel(string(p.Level)); ok {
		p.Level = l
	}
	if t, ok := ParseType(string(p.Type)); ok {
		p.Type = t
	}
	if strings.TrimSpace(string(p.Duration)) == "" {
		p.Duration = DurationStandard
	} else if d, ok := ParseDuration(string(p.Duration)); ok {
		p.Duration = d
	}
	return p
}

// Validate checks required fields and enum membership.
func (p JobProfile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(msgs, "; "))
}

// MaxQuestions is the number of questions an interview for this profile asks.
func (p JobProfile) MaxQuestions() int {
	return p.Duration.MaxQuestions()
}
