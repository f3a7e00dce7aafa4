package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultWeeklyVolumeM   = 5000
	DefaultSessionsPerWeek = 3
)

type LongestSwim struct {
	DistanceM int `json:"distance_m"`
	TimeMin   int `json:"time_min"`
}

type Access struct {
	Pool      bool `json:"pool"`
	OpenWater bool `json:"open_water"`
}

// Availability is either a set of weekdays or a sessions-per-week count.
type Availability struct {
	Weekdays        []time.Weekday `json:"weekdays,omitempty"`
	SessionsPerWeek int            `json:"sessions_per_week,omitempty"`
}

type Event struct {
	Name      string `json:"name"`
	Date      Date   `json:"date"`
	DistanceM int    `json:"distance_m"`
}

type AthleteProfile struct {
	Goal          Goal         `json:"goal"`
	TargetTime    string       `json:"target_time,omitempty"`
	WeeklyVolumeM int          `json:"weekly_volume_m,omitempty"`
	LongestSwim   LongestSwim  `json:"longest_recent_swim"`
	Access        Access       `json:"access"`
	Tone          Tone         `json:"tone"`
	Availability  Availability `json:"availability"`
	Event         Event        `json:"event"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// WeeklyVolumeTarget returns the weekly volume goal, defaulting when unset.
func (p AthleteProfile) WeeklyVolumeTarget() int {
	if p.WeeklyVolumeM > 0 {
		return p.WeeklyVolumeM
	}
	return DefaultWeeklyVolumeM
}

// SessionsPerWeekTarget counts listed weekdays first, then the explicit
// count, then the default.
func (p AthleteProfile) SessionsPerWeekTarget() int {
	if n := len(p.Availability.Weekdays); n > 0 {
		return n
	}
	if p.Availability.SessionsPerWeek > 0 {
		return p.Availability.SessionsPerWeek
	}
	return DefaultSessionsPerWeek
}

// DefaultSessionType picks pool when the swimmer has pool access.
func (p AthleteProfile) DefaultSessionType() SessionType {
	if !p.Access.Pool && p.Access.OpenWater {
		return SessionOpenWater
	}
	return SessionPool
}

// Validate checks host-side input rules. The planner never calls it.
func (p AthleteProfile) Validate() error {
	var errs []error
	if !ValidGoals[p.Goal] {
		errs = append(errs, fmt.Errorf("invalid goal %q", p.Goal))
	}
	if p.Tone != "" && !ValidTones[p.Tone] {
		errs = append(errs, fmt.Errorf("invalid tone %q", p.Tone))
	}
	if p.WeeklyVolumeM < 0 {
		errs = append(errs, errors.New("weekly volume must not be negative"))
	}
	if p.LongestSwim.DistanceM < 0 || p.LongestSwim.TimeMin < 0 {
		errs = append(errs, errors.New("longest swim must not be negative"))
	}
	if !p.Access.Pool && !p.Access.OpenWater {
		errs = append(errs, errors.New("at least one of pool or open water access is required"))
	}
	if len(p.Availability.Weekdays) > 0 && p.Availability.SessionsPerWeek > 0 {
		errs = append(errs, errors.New("availability takes either weekdays or sessions per week, not both"))
	}
	if p.Availability.SessionsPerWeek < 0 || p.Availability.SessionsPerWeek > 14 {
		errs = append(errs, fmt.Errorf("sessions per week %d out of range", p.Availability.SessionsPerWeek))
	}
	if p.Event.Date.IsZero() {
		errs = append(errs, errors.New("event date is required"))
	}
	if p.Event.DistanceM <= 0 {
		errs = append(errs, errors.New("event distance must be positive"))
	}
	if p.Goal == GoalTargetTime && p.TargetTime == "" {
		errs = append(errs, errors.New("target time is required for the target_time goal"))
	}
	return errors.Join(errs...)
}
