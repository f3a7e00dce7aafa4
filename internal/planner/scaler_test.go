package planner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleTemplate_RestIsIdempotent(t *testing.T) {
	rest := defaultCatalog(t).RestDay()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		profile := testProfile(rng.Intn(60))
		profile.WeeklyVolumeM = rng.Intn(20000)
		res := ScaleTemplate(rest, profile, domain.Metrics{MaxDistanceM: rng.Intn(6000)})
		assert.Nil(t, res.Session.TotalDistanceM)
		assert.Equal(t, 0, res.Session.DistanceM())
		assert.Empty(t, res.Session.Structure)
		assert.Equal(t, domain.SessionRest, res.Session.Type)
		assert.Equal(t, []string{NoteNoScaling}, res.Notes)
	}
}

func TestScaleTemplate_NoScalingNeeded(t *testing.T) {
	profile := testProfile(30)
	profile.WeeklyVolumeM = 6000
	res := ScaleTemplate(mustTemplate(t, "build_aerobic_300s"), profile, domain.Metrics{MaxDistanceM: 2000})

	assert.Equal(t, 1.0, res.Factor)
	assert.Equal(t, []string{NoteNoScaling}, res.Notes)
	assert.Equal(t, 2000, res.Session.DistanceM())
	assert.Equal(t, 45, res.Session.EstimatedDurationMin)
	assert.Equal(t, "5x300m steady freestyle, even splits @ 30s rest", res.Session.Structure[1].Items[0].Text)
	assert.Equal(t, "300m easy freestyle", res.Session.Structure[0].Items[0].Text)
}

func TestScaleTemplate_WeeklyBackoffHitsFloorAndScalesRepCount(t *testing.T) {
	profile := testProfile(30)
	profile.WeeklyVolumeM = 3000
	res := ScaleTemplate(mustTemplate(t, "build_aerobic_300s"), profile, domain.Metrics{MaxDistanceM: 3000})

	assert.InDelta(t, 0.70, res.Factor, 1e-9)
	require.Len(t, res.Notes, 2)
	assert.Contains(t, res.Notes[0], "weekly volume target of 3000m")
	assert.Contains(t, res.Notes[1], "70%")

	set := res.Session.Structure[1].Items[0]
	assert.Equal(t, 4, set.Reps, "per-rep would shrink below three quarters, so the rep count scales")
	assert.Equal(t, 300, set.RepDistanceM)
	assert.Equal(t, "4x300m steady freestyle, even splits @ 30s rest", set.Text)

	assert.Equal(t, 200, res.Session.Structure[0].Items[0].DistanceM)
	assert.Equal(t, 150, res.Session.Structure[2].Items[0].DistanceM)
	assert.Equal(t, 1550, res.Session.DistanceM())
}

func TestScaleTemplate_CeilingCap(t *testing.T) {
	profile := testProfile(30)
	profile.WeeklyVolumeM = 10000
	res := ScaleTemplate(mustTemplate(t, "build_threshold_100s"), profile, domain.Metrics{MaxDistanceM: 1000})

	assert.InDelta(t, 1400.0/1800.0, res.Factor, 1e-9)
	assert.Equal(t, []string{"Capped at safe progression ceiling of 1400m"}, res.Notes)

	reps := res.Session.Structure[1].Items[0]
	assert.Equal(t, 10, reps.Reps)
	assert.Equal(t, 75, reps.RepDistanceM)
	assert.Equal(t, 1350, res.Session.DistanceM())
	assert.LessOrEqual(t, res.Session.DistanceM(), 1400)
}

func TestScaleTemplate_DurationFromPace(t *testing.T) {
	profile := testProfile(30)
	profile.WeeklyVolumeM = 6000
	res := ScaleTemplate(mustTemplate(t, "build_aerobic_300s"), profile,
		domain.Metrics{MaxDistanceM: 2000, AvgPaceMinPerKm: floatPtr(25)})
	assert.Equal(t, 55, res.Session.EstimatedDurationMin)
}

func TestScaleTemplate_DoesNotMutateTemplate(t *testing.T) {
	tmpl := mustTemplate(t, "build_aerobic_300s")
	profile := testProfile(30)
	profile.WeeklyVolumeM = 1000
	_ = ScaleTemplate(tmpl, profile, domain.Metrics{})
	assert.Equal(t, 5, tmpl.Structure[1].Items[0].Reps)
	assert.Equal(t, 300, tmpl.Structure[0].Items[0].DistanceM)
}

func TestScaleTemplate_DistanceConservation(t *testing.T) {
	c := defaultCatalog(t)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		profile := testProfile(30)
		profile.WeeklyVolumeM = 1000 + rng.Intn(14000)
		m := domain.Metrics{MaxDistanceM: rng.Intn(5000)}
		for _, tmpl := range c.All() {
			res := ScaleTemplate(tmpl, profile, m)
			assert.Equal(t, domain.SumDistanceM(res.Session.Structure), res.Session.DistanceM(), "template %s", tmpl.ID)
		}
	}
}

// roundingToleranceM bounds how far per-item rounding can move a total away
// from base x factor.
func roundingToleranceM(tmpl domain.WorkoutTemplate) float64 {
	tol := 0.0
	for _, b := range tmpl.Structure {
		for _, it := range b.Items {
			if it.IsRepeat() {
				tol += float64(it.Reps)*float64(repRoundM)/2 + float64(it.RepDistanceM)*minRepCount
				continue
			}
			tol += plainRoundM
		}
	}
	return tol
}

func TestScaleTemplate_FloorAndCeilingProperty(t *testing.T) {
	c := defaultCatalog(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		profile := testProfile(30)
		profile.WeeklyVolumeM = rng.Intn(15000)
		m := domain.Metrics{MaxDistanceM: rng.Intn(5000)}
		ceiling := SafeCeilingM(m)

		for _, tmpl := range c.All() {
			if tmpl.IsRest() {
				continue
			}
			res := ScaleTemplate(tmpl, profile, m)
			base := float64(tmpl.BaseDistanceM)
			total := float64(res.Session.DistanceM())
			tol := roundingToleranceM(tmpl)

			assert.GreaterOrEqual(t, res.Factor, scaleFloor)
			assert.GreaterOrEqual(t, total, scaleFloor*base-tol, "template %s floor", tmpl.ID)
			if scaleFloor*base <= ceiling {
				assert.LessOrEqual(t, total, math.Max(ceiling, base*res.Factor)+tol, "template %s ceiling", tmpl.ID)
				assert.LessOrEqual(t, base*res.Factor, ceiling+1e-9, "template %s factor", tmpl.ID)
			}
		}
	}
}

func TestScaleItem_TimeBasedEffortFollowsRepDistance(t *testing.T) {
	it := domain.Item{Instruction: "steady", Reps: 4, RepDistanceM: 200, RestSec: 30, TimeBased: true, EffortMin: 4}
	got := scaleItem(it, 1.5)
	assert.Equal(t, 300, got.RepDistanceM)
	assert.Equal(t, 4, got.Reps)
	assert.InDelta(t, 6.0, got.EffortMin, 1e-9)
}

func TestScaleItem_PlainMinimum(t *testing.T) {
	got := scaleItem(domain.Item{Instruction: "kick", DistanceM: 50}, 0.3)
	assert.Equal(t, 50, got.DistanceM)
}
