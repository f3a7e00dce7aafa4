package planner

import "github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"

const (
	taperMaxDays   = 3
	sharpenMaxDays = 10
)

// ClassifyPhase buckets the days remaining until the event. Past events stay
// in TAPER.
func ClassifyPhase(event, today domain.Date) (domain.Phase, int) {
	days := today.DaysUntil(event)
	switch {
	case days <= taperMaxDays:
		return domain.PhaseTaper, days
	case days <= sharpenMaxDays:
		return domain.PhaseSharpen, days
	default:
		return domain.PhaseBuild, days
	}
}
