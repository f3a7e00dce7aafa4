package planner

import (
	"math"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const (
	// ReadinessWindowDays bounds the history handed to AssessReadiness.
	ReadinessWindowDays = 14

	defaultAvgEffort   = 5
	minCeilingM        = 1400
	ceilingGrowthRatio = 1.15
)

// daysAgo counts whole days between the session and today; future sessions
// are negative.
func daysAgo(s domain.TrainingSession, today domain.Date) int {
	return s.Date.DaysUntil(today)
}

// withinDays reports whether the session falls in the last n calendar days,
// today included.
func withinDays(s domain.TrainingSession, today domain.Date, n int) bool {
	d := daysAgo(s, today)
	return d >= 0 && d < n
}

// RecentSessions keeps the sessions inside the last n days.
func RecentSessions(history []domain.TrainingSession, today domain.Date, n int) []domain.TrainingSession {
	var out []domain.TrainingSession
	for _, s := range history {
		if withinDays(s, today, n) {
			out = append(out, s)
		}
	}
	return out
}

// CalculateRecentMetrics summarises the full history. Max distance spans all
// sessions ever logged; the rolling figures use 7 and 14 day windows.
func CalculateRecentMetrics(history []domain.TrainingSession, today domain.Date) domain.Metrics {
	m := domain.Metrics{AvgEffort: defaultAvgEffort}

	var (
		sum14       int
		effortSum   int
		effortCount int
		paceSum     float64
		paceCount   int
	)
	for _, s := range history {
		if s.DistanceM > m.MaxDistanceM {
			m.MaxDistanceM = s.DistanceM
		}
		if s.DistanceM > 0 && s.DurationMin > 0 {
			paceSum += float64(s.DurationMin) / (float64(s.DistanceM) / 1000)
			paceCount++
		}
		if withinDays(s, today, 14) {
			sum14 += s.DistanceM
			m.Sessions14d++
		}
		if withinDays(s, today, 7) {
			effortSum += s.EffortScore()
			effortCount++
			m.Sessions7d++
		}
	}

	m.AvgWeeklyVolumeM = sum14 / 2
	if effortCount > 0 {
		m.AvgEffort = float64(effortSum) / float64(effortCount)
	}
	if paceCount > 0 {
		pace := paceSum / float64(paceCount)
		m.AvgPaceMinPerKm = &pace
	}
	return m
}

// SafeCeilingM is the progression limit shared by selection, scaling and
// validation.
func SafeCeilingM(m domain.Metrics) float64 {
	return math.Max(ceilingGrowthRatio*float64(m.MaxDistanceM), minCeilingM)
}
