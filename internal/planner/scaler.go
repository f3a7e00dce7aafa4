package planner

import (
	"fmt"
	"math"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const (
	// assumedSessionsPerWeek is fixed here even though the validator uses the
	// athlete's own sessions-per-week target.
	assumedSessionsPerWeek = 3

	weeklyOverloadRatio = 1.2
	weeklyBackoffRatio  = 0.9
	scaleFloor          = 0.70
	repShrinkLimit      = 0.75
	minRepCount         = 2
	plainRoundM         = 50
	repRoundM           = 25
	restBufferRatio     = 1.1

	NoteNoScaling = "No scaling needed"
)

// ScaleResult is a template rewritten for one athlete.
type ScaleResult struct {
	Session domain.PlanSession
	Factor  float64
	Notes   []string
}

// ScaleTemplate fits a template to the athlete's declared volume and safe
// progression ceiling. Item distances are re-rounded and the total is their
// exact sum.
func ScaleTemplate(t domain.WorkoutTemplate, profile domain.AthleteProfile, m domain.Metrics) ScaleResult {
	if t.IsRest() || t.BaseDistanceM <= 0 {
		return ScaleResult{Session: restSession(), Factor: 1, Notes: []string{NoteNoScaling}}
	}

	base := float64(t.BaseDistanceM)
	factor := 1.0
	var notes []string

	target := float64(profile.WeeklyVolumeTarget())
	weekly := base * assumedSessionsPerWeek
	if weekly > weeklyOverloadRatio*target {
		factor = target / weekly * weeklyBackoffRatio
		notes = append(notes, fmt.Sprintf("Scaled to weekly volume target of %dm (x%.2f)", profile.WeeklyVolumeTarget(), factor))
	}

	ceiling := SafeCeilingM(m)
	if base*factor > ceiling {
		factor = ceiling / base
		notes = append(notes, fmt.Sprintf("Capped at safe progression ceiling of %.0fm", ceiling))
	}

	if factor < scaleFloor {
		factor = scaleFloor
		notes = append(notes, "Held at 70% of template distance to keep the workout's shape")
	}

	structure := domain.CloneBlocks(t.Structure)
	if factor != 1 {
		structure = scaleBlocks(structure, factor)
	}
	renderText(structure)

	total := domain.SumDistanceM(structure)
	if len(notes) == 0 {
		notes = []string{NoteNoScaling}
	}

	return ScaleResult{
		Session: domain.PlanSession{
			Type:                 domain.SessionPool,
			TotalDistanceM:       &total,
			EstimatedDurationMin: estimateDuration(total, t, m),
			Intensity:            t.Intensity,
			Structure:            structure,
		},
		Factor: factor,
		Notes:  notes,
	}
}

// scaleBlocks applies factor to every item of an already-cloned structure.
func scaleBlocks(blocks []domain.Block, factor float64) []domain.Block {
	for bi := range blocks {
		for ii, it := range blocks[bi].Items {
			blocks[bi].Items[ii] = scaleItem(it, factor)
		}
	}
	return blocks
}

func scaleItem(it domain.Item, factor float64) domain.Item {
	switch {
	case it.IsRepeat():
		original := it.RepDistanceM
		perRep := roundTo(float64(original)*factor, repRoundM)
		if float64(perRep) < repShrinkLimit*float64(original) {
			it.Reps = max(minRepCount, int(math.Round(float64(it.Reps)*factor)))
			return it
		}
		perRep = max(repRoundM, perRep)
		if it.TimeBased && it.EffortMin > 0 {
			it.EffortMin = round1(it.EffortMin * float64(perRep) / float64(original))
		}
		it.RepDistanceM = perRep
	case it.DistanceM > 0:
		it.DistanceM = max(plainRoundM, roundTo(float64(it.DistanceM)*factor, plainRoundM))
	}
	return it
}

// estimateDuration prefers the athlete's own pace, padded for rests and
// transitions; otherwise it scales the template estimate by distance.
func estimateDuration(total int, t domain.WorkoutTemplate, m domain.Metrics) int {
	if m.AvgPaceMinPerKm != nil && *m.AvgPaceMinPerKm > 0 {
		return int(math.Round(float64(total) / 1000 * *m.AvgPaceMinPerKm * restBufferRatio))
	}
	if t.BaseDistanceM <= 0 {
		return t.BaseDurationMin
	}
	return int(math.Round(float64(t.BaseDurationMin) * float64(total) / float64(t.BaseDistanceM)))
}

func restSession() domain.PlanSession {
	return domain.PlanSession{
		Type:      domain.SessionRest,
		Intensity: domain.IntensityRest,
		Structure: []domain.Block{},
	}
}
