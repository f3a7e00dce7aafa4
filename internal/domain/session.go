package domain

import (
	"errors"
	"fmt"
	"time"
)

// TrainingSession is one logged swim.
type TrainingSession struct {
	ID          string      `json:"id"`
	Date        Date        `json:"date"`
	Type        SessionType `json:"type"`
	DistanceM   int         `json:"distance_m"`
	DurationMin int         `json:"time_min"`
	Effort      EffortLevel `json:"effort,omitempty"`
	RPE         *int        `json:"rpe,omitempty"` // legacy 1-10 scale
	Notes       string      `json:"notes,omitempty"`
	Conditions  string      `json:"conditions,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// EffortBucket normalises the session effort, mapping a legacy RPE when no
// named effort was recorded.
func (s TrainingSession) EffortBucket() EffortLevel {
	if s.Effort != "" {
		return s.Effort
	}
	if s.RPE == nil {
		return EffortModerate
	}
	switch rpe := *s.RPE; {
	case rpe <= 3:
		return EffortEasy
	case rpe <= 6:
		return EffortModerate
	default:
		return EffortHard
	}
}

// EffortScore maps the session effort onto a 1-10 scale. A legacy RPE is used
// verbatim when no named effort was recorded.
func (s TrainingSession) EffortScore() int {
	if s.Effort == "" && s.RPE != nil {
		return *s.RPE
	}
	switch s.EffortBucket() {
	case EffortEasy:
		return 3
	case EffortHard:
		return 8
	default:
		return 5
	}
}

// IsHard reports whether the session falls into the hard effort bucket.
func (s TrainingSession) IsHard() bool {
	return s.EffortBucket() == EffortHard
}

// Validate checks host-side logging rules.
func (s TrainingSession) Validate() error {
	var errs []error
	if s.Date.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}
	if !ValidSessionTypes[s.Type] {
		errs = append(errs, fmt.Errorf("invalid session type %q", s.Type))
	}
	if s.DistanceM <= 0 {
		errs = append(errs, errors.New("distance must be positive"))
	}
	if s.DurationMin < 0 {
		errs = append(errs, errors.New("duration must not be negative"))
	}
	if s.Effort != "" && !ValidEffortLevels[s.Effort] {
		errs = append(errs, fmt.Errorf("invalid effort %q", s.Effort))
	}
	if s.RPE != nil && (*s.RPE < 1 || *s.RPE > 10) {
		errs = append(errs, fmt.Errorf("rpe %d out of range 1-10", *s.RPE))
	}
	if s.Effort == "" && s.RPE == nil {
		errs = append(errs, errors.New("either effort or rpe is required"))
	}
	return errors.Join(errs...)
}
