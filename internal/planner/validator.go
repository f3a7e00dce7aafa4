package planner

import (
	"fmt"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

// DistanceToleranceM absorbs rounding drift from adapting and rescaling.
const DistanceToleranceM = 50

// ValidatePlan annotates a plan with advisory checks. It never rejects.
func ValidatePlan(plan domain.SessionPlan, profile domain.AthleteProfile, m domain.Metrics) domain.Validation {
	v := domain.Validation{
		DistanceCheckPassed:   true,
		GuardrailsCheckPassed: true,
		Warnings:              []string{},
	}
	if plan.IsRest() {
		return v
	}

	stated := plan.Session.DistanceM()
	summed := domain.SumDistanceM(plan.Session.Structure)
	if diff := summed - stated; diff > DistanceToleranceM || diff < -DistanceToleranceM {
		v.DistanceCheckPassed = false
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("Structure adds up to %dm but the session states %dm", summed, stated))
	}

	if ceiling := SafeCeilingM(m); float64(stated) > ceiling {
		v.GuardrailsCheckPassed = false
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("%dm is above the safe progression ceiling of %.0fm", stated, ceiling))
	}

	perWeek := profile.SessionsPerWeekTarget()
	target := profile.WeeklyVolumeTarget()
	if projected := stated * perWeek; float64(projected) > weeklyOverloadRatio*float64(target) {
		v.GuardrailsCheckPassed = false
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("At %d sessions a week this projects to %dm, more than 120%% of your %dm target; watch for accumulated fatigue",
				perWeek, projected, target))
	}

	return v
}
