package planner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const (
	ReasonStartingFresh = "No recent sessions - starting fresh"
	ReasonBalanced      = "Training load looks balanced"
	ReasonHardYesterday = "Hard session yesterday"
)

// fatigueKeywords are matched as case-insensitive substrings of session notes.
var fatigueKeywords = []string{
	"tired", "exhausted", "fatigue", "sore", "pain", "hurt", "ache",
	"injury", "injured", "sick", "illness", "unwell", "strain", "cramp", "dizzy",
}

type readinessBuilder struct {
	status  domain.ReadinessStatus
	reasons []string
}

// escalate records the reason and raises the status if target is more severe.
func (b *readinessBuilder) escalate(target domain.ReadinessStatus, reason string) {
	if target.Severity() > b.status.Severity() {
		b.status = target
	}
	b.reasons = append(b.reasons, reason)
}

// AssessReadiness evaluates recent sessions (caller-filtered to the last two
// weeks) against a fixed rule set. Rules only ever raise severity.
func AssessReadiness(recent []domain.TrainingSession, today domain.Date) domain.Readiness {
	if len(recent) == 0 {
		return domain.Readiness{
			Status:  domain.ReadinessReady,
			Reasons: []string{ReasonStartingFresh},
		}
	}

	b := &readinessBuilder{status: domain.ReadinessReady}

	latest := mostRecent(recent)
	if latest.IsHard() {
		b.escalate(domain.ReadinessFatigued,
			fmt.Sprintf("Last session was hard (%s, %d/10)", latest.EffortBucket(), latest.EffortScore()))
	}
	if matched := matchKeywords(latest.Notes); len(matched) > 0 {
		b.escalate(domain.ReadinessNeedsRest,
			fmt.Sprintf("Session notes mention %s", strings.Join(matched, ", ")))
	}

	if n := countHard(recent, today, 3); n >= 2 {
		b.escalate(domain.ReadinessFatigued, fmt.Sprintf("%d hard sessions in the last 3 days", n))
	}
	if n := countHard(recent, today, 7); n > 2 {
		b.escalate(domain.ReadinessFatigued, fmt.Sprintf("%d hard sessions in the last 7 days", n))
	}

	for _, s := range recent {
		if daysAgo(s, today) == 1 && s.IsHard() {
			b.escalate(domain.ReadinessFatigued, ReasonHardYesterday)
			break
		}
	}

	if len(b.reasons) == 0 {
		b.reasons = append(b.reasons, ReasonBalanced)
	}
	return domain.Readiness{Status: b.status, Reasons: b.reasons}
}

// mostRecent picks the latest-dated session; ties keep input order.
func mostRecent(sessions []domain.TrainingSession) domain.TrainingSession {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b domain.TrainingSession) int {
		return b.Date.Compare(a.Date.Time)
	})
	return sorted[0]
}

func matchKeywords(notes string) []string {
	if notes == "" {
		return nil
	}
	lower := strings.ToLower(notes)
	var matched []string
	for _, kw := range fatigueKeywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func countHard(sessions []domain.TrainingSession, today domain.Date, window int) int {
	n := 0
	for _, s := range sessions {
		if withinDays(s, today, window) && s.IsHard() {
			n++
		}
	}
	return n
}
