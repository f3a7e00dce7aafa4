package planner

import (
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/catalog"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const taperShortM = 1200

type SelectionInput struct {
	Phase     domain.Phase
	Readiness domain.Readiness
	Metrics   domain.Metrics
	Today     domain.Date
}

// SelectTemplate narrows the phase's templates by readiness, distance and
// phase emphasis, then picks one with a per-day stable index. It returns nil
// only when the catalog has nothing for the phase.
func SelectTemplate(c *catalog.Catalog, in SelectionInput) *domain.WorkoutTemplate {
	if in.Readiness.Status == domain.ReadinessNeedsRest {
		rest := c.RestDay()
		return &rest
	}

	phaseSet := c.ByPhase(in.Phase)
	if len(phaseSet) == 0 {
		return nil
	}

	var candidates []domain.WorkoutTemplate
	if in.Readiness.Status == domain.ReadinessFatigued {
		candidates = filter(phaseSet, func(t domain.WorkoutTemplate) bool {
			return t.HasTag(domain.TagRecovery) || t.Intensity == domain.IntensityEasy
		})
		if len(candidates) == 0 {
			rec := c.RecoverySwim()
			return &rec
		}
	} else {
		ceiling := SafeCeilingM(in.Metrics)
		candidates = filter(phaseSet, func(t domain.WorkoutTemplate) bool {
			return float64(t.BaseDistanceM) <= ceiling
		})
		if len(candidates) == 0 {
			candidates = filter(phaseSet, func(t domain.WorkoutTemplate) bool {
				return t.BaseDistanceM <= minCeilingM
			})
		}
		if len(candidates) == 0 {
			// The ceiling never drops below minCeilingM, so the relaxed set is
			// empty too; keep the phase's shortest option.
			candidates = shortest(phaseSet)
		}

		switch in.Phase {
		case domain.PhaseSharpen:
			candidates = narrow(candidates, func(t domain.WorkoutTemplate) bool {
				return t.HasTag(domain.TagRaceSpecific)
			})
		case domain.PhaseTaper:
			candidates = narrow(candidates, func(t domain.WorkoutTemplate) bool {
				return t.HasTag(domain.TagTaper) || t.BaseDistanceM <= taperShortM
			})
		}
	}

	if mentionsYesterday(in.Readiness.Reasons) {
		candidates = narrow(candidates, func(t domain.WorkoutTemplate) bool {
			return t.Intensity != domain.IntensityHard
		})
	}

	picked := candidates[varietyIndex(in.Today, len(candidates))]
	return &picked
}

// varietyIndex sums the character codes of the ISO date. Same day and same
// candidate count always give the same index.
func varietyIndex(today domain.Date, n int) int {
	if n <= 1 {
		return 0
	}
	sum := 0
	for _, r := range today.String() {
		sum += int(r)
	}
	return sum % n
}

func filter(ts []domain.WorkoutTemplate, keep func(domain.WorkoutTemplate) bool) []domain.WorkoutTemplate {
	var out []domain.WorkoutTemplate
	for _, t := range ts {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// narrow applies keep only when at least one template survives.
func narrow(ts []domain.WorkoutTemplate, keep func(domain.WorkoutTemplate) bool) []domain.WorkoutTemplate {
	if out := filter(ts, keep); len(out) > 0 {
		return out
	}
	return ts
}

func shortest(ts []domain.WorkoutTemplate) []domain.WorkoutTemplate {
	lowest := ts[0].BaseDistanceM
	for _, t := range ts[1:] {
		lowest = min(lowest, t.BaseDistanceM)
	}
	return filter(ts, func(t domain.WorkoutTemplate) bool { return t.BaseDistanceM == lowest })
}

func mentionsYesterday(reasons []string) bool {
	for _, r := range reasons {
		if strings.Contains(strings.ToLower(r), "yesterday") {
			return true
		}
	}
	return false
}
