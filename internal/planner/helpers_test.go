package planner

import (
	"testing"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/catalog"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/stretchr/testify/require"
)

var testToday = domain.NewDate(2026, time.June, 10)

func fixedClock() time.Time {
	return time.Date(2026, time.June, 10, 9, 30, 0, 0, time.UTC)
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	return New(defaultCatalog(t), WithClock(fixedClock))
}

func mustTemplate(t *testing.T, id string) domain.WorkoutTemplate {
	t.Helper()
	tmpl, ok := defaultCatalog(t).ByID(id)
	require.True(t, ok, "template %s", id)
	return tmpl
}

type sessionOption func(*domain.TrainingSession)

func withEffort(e domain.EffortLevel) sessionOption {
	return func(s *domain.TrainingSession) { s.Effort = e }
}

func withNotes(n string) sessionOption {
	return func(s *domain.TrainingSession) { s.Notes = n }
}

func withDuration(min int) sessionOption {
	return func(s *domain.TrainingSession) { s.DurationMin = min }
}

func sessionDaysAgo(days, distance int, opts ...sessionOption) domain.TrainingSession {
	s := domain.TrainingSession{
		Date:        testToday.AddDays(-days),
		Type:        domain.SessionPool,
		DistanceM:   distance,
		DurationMin: distance / 40,
		Effort:      domain.EffortModerate,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func testProfile(daysToEvent int) domain.AthleteProfile {
	return domain.AthleteProfile{
		Goal:          domain.GoalFinishComfortably,
		WeeklyVolumeM: 5000,
		Access:        domain.Access{Pool: true, OpenWater: true},
		Tone:          domain.ToneNeutral,
		Availability:  domain.Availability{SessionsPerWeek: 3},
		Event: domain.Event{
			Name:      "Harbour Swim",
			Date:      testToday.AddDays(daysToEvent),
			DistanceM: 3000,
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func planSession(total int, blocks ...domain.Block) domain.PlanSession {
	return domain.PlanSession{
		Type:                 domain.SessionPool,
		TotalDistanceM:       &total,
		EstimatedDurationMin: total / 40,
		Intensity:            domain.IntensityModerate,
		Structure:            blocks,
	}
}
