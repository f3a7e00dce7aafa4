package testutil

import (
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.TrainingSession)

func WithSessionType(st domain.SessionType) SessionOption {
	return func(s *domain.TrainingSession) {
		s.Type = st
	}
}

func WithEffort(e domain.EffortLevel) SessionOption {
	return func(s *domain.TrainingSession) {
		s.Effort = e
	}
}

// WithRPE records a legacy RPE and clears the named effort.
func WithRPE(rpe int) SessionOption {
	return func(s *domain.TrainingSession) {
		s.Effort = ""
		s.RPE = &rpe
	}
}

func WithDuration(min int) SessionOption {
	return func(s *domain.TrainingSession) {
		s.DurationMin = min
	}
}

func WithNotes(n string) SessionOption {
	return func(s *domain.TrainingSession) {
		s.Notes = n
	}
}

func WithConditions(c string) SessionOption {
	return func(s *domain.TrainingSession) {
		s.Conditions = c
	}
}

func NewTestSession(date domain.Date, distanceM int, opts ...SessionOption) *domain.TrainingSession {
	s := &domain.TrainingSession{
		ID:          uuid.New().String(),
		Date:        date,
		Type:        domain.SessionPool,
		DistanceM:   distanceM,
		DurationMin: distanceM / 40,
		Effort:      domain.EffortModerate,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile options
type ProfileOption func(*domain.AthleteProfile)

func WithWeeklyVolume(m int) ProfileOption {
	return func(p *domain.AthleteProfile) {
		p.WeeklyVolumeM = m
	}
}

func WithAccess(pool, openWater bool) ProfileOption {
	return func(p *domain.AthleteProfile) {
		p.Access = domain.Access{Pool: pool, OpenWater: openWater}
	}
}

func WithTone(t domain.Tone) ProfileOption {
	return func(p *domain.AthleteProfile) {
		p.Tone = t
	}
}

func WithWeekdays(days ...time.Weekday) ProfileOption {
	return func(p *domain.AthleteProfile) {
		p.Availability = domain.Availability{Weekdays: days}
	}
}

func NewTestProfile(eventDate domain.Date, opts ...ProfileOption) *domain.AthleteProfile {
	p := &domain.AthleteProfile{
		Goal:          domain.GoalFinishComfortably,
		WeeklyVolumeM: 6000,
		LongestSwim:   domain.LongestSwim{DistanceM: 2500, TimeMin: 60},
		Access:        domain.Access{Pool: true, OpenWater: true},
		Tone:          domain.ToneNeutral,
		Availability:  domain.Availability{SessionsPerWeek: 3},
		Event: domain.Event{
			Name:      "Harbour Mile",
			Date:      eventDate,
			DistanceM: 3000,
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan options
type PlanOption func(*domain.SessionPlan)

func WithParent(parent *domain.SessionPlan, op domain.PlanOperation) PlanOption {
	return func(p *domain.SessionPlan) {
		p.Lineage.ParentID = parent.Lineage.ID
		p.Lineage.Generation = parent.Lineage.Generation + 1
		p.Lineage.Operation = op
	}
}

func WithPlanSessionType(st domain.SessionType) PlanOption {
	return func(p *domain.SessionPlan) {
		p.Session.Type = st
	}
}

// NewTestPlan builds a small pool plan with a single 1500m main set.
func NewTestPlan(date domain.Date, opts ...PlanOption) *domain.SessionPlan {
	total := 1500
	p := &domain.SessionPlan{
		Lineage: domain.Lineage{ID: uuid.New().String(), Operation: domain.OpGenerate},
		Date:    date,
		Session: domain.PlanSession{
			Type:                 domain.SessionPool,
			TotalDistanceM:       &total,
			EstimatedDurationMin: 35,
			Intensity:            domain.IntensityModerate,
			Structure: []domain.Block{{
				Label: "Main",
				Items: []domain.Item{{Instruction: "steady freestyle", DistanceM: 1500, Text: "1500m steady freestyle"}},
			}},
		},
		Provenance: domain.Provenance{
			TemplateID:   "build_pyramid",
			TemplateName: "Pyramid",
			ScalingNotes: []string{"No scaling needed"},
		},
		Phase:       domain.PhaseBuild,
		DaysToEvent: 30,
		Readiness:   domain.Readiness{Status: domain.ReadinessReady, Reasons: []string{"Training load looks balanced"}},
		Validation:  domain.Validation{DistanceCheckPassed: true, GuardrailsCheckPassed: true, Warnings: []string{}},
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
