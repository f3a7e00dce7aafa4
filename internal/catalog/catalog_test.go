package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsAndValidates(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 10)

	for _, phase := range []domain.Phase{domain.PhaseBuild, domain.PhaseSharpen, domain.PhaseTaper} {
		assert.NotEmpty(t, c.ByPhase(phase), "phase %s should have templates", phase)
	}

	rest := c.RestDay()
	assert.Equal(t, RestDayID, rest.ID)
	assert.True(t, rest.IsRest())
	assert.Empty(t, rest.Structure)

	rec := c.RecoverySwim()
	assert.Equal(t, RecoverySwimID, rec.ID)
	assert.True(t, rec.HasTag(domain.TagRecovery))
}

func TestByPhase_ExcludesRestAndKeepsOrder(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	taper := c.ByPhase(domain.PhaseTaper)
	var ids []string
	for _, tmpl := range taper {
		assert.False(t, tmpl.IsRest())
		ids = append(ids, tmpl.ID)
	}
	assert.Equal(t, []string{"recovery_swim", "taper_sharpener", "taper_shakeout", "taper_race_rehearsal"}, ids)
}

func TestByID(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tmpl, ok := c.ByID("sharpen_race_pace_200s")
	require.True(t, ok)
	assert.Equal(t, 1800, tmpl.BaseDistanceM)

	_, ok = c.ByID("missing")
	assert.False(t, ok)
}

func TestNew_FallsBackToBuiltinRestAndRecovery(t *testing.T) {
	c := New(nil)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.ByPhase(domain.PhaseBuild))

	rest, ok := c.ByID(RestDayID)
	require.True(t, ok)
	assert.True(t, rest.IsRest())

	rec, ok := c.ByID(RecoverySwimID)
	require.True(t, ok)
	assert.Equal(t, domain.SumDistanceM(rec.Structure), rec.BaseDistanceM)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []domain.WorkoutTemplate{{
		ID: "x", Name: "X", Phases: []domain.Phase{domain.PhaseBuild}, Intensity: domain.IntensityEasy,
		BaseDistanceM: 100,
		Structure:     []domain.Block{{Label: "Main", Items: []domain.Item{{Instruction: "swim", DistanceM: 100}}}},
	}}
	c := New(in)
	in[0].Structure[0].Items[0].DistanceM = 999

	got, _ := c.ByID("x")
	assert.Equal(t, 100, got.Structure[0].Items[0].DistanceM)
}

func TestValidate_ReportsStructuralErrors(t *testing.T) {
	errs := Validate([]domain.WorkoutTemplate{
		{ID: "a", Name: "A", Phases: []domain.Phase{"WINTER"}, Intensity: "brutal", BaseDistanceM: 500,
			Structure: []domain.Block{{Items: []domain.Item{{Instruction: "swim", Reps: 4}}}}},
		{ID: "a", Name: "", Phases: []domain.Phase{domain.PhaseTaper}, Intensity: domain.IntensityRest, BaseDistanceM: 100},
	})

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Contains(t, msgs, `template "a": invalid phase "WINTER"`)
	assert.Contains(t, msgs, `template "a": invalid intensity "brutal"`)
	assert.Contains(t, msgs, `template "a": structure sums to 0m, base distance is 500m`)
	assert.Contains(t, msgs, `template "a": block[0] item[0]: reps and rep distance go together`)
	assert.Contains(t, msgs, `template[1]: duplicate id "a"`)
	assert.Contains(t, msgs, `template "a": rest templates carry no distance`)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"easy_1k","name":"Easy 1k","phases":["BUILD"],"intensity":"easy","tags":["recovery"],
		 "base_distance_m":1000,"base_duration_min":25,
		 "structure":[{"label":"Main","items":[{"instruction":"easy","distance_m":1000}]}]}
	]`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.ByPhase(domain.PhaseBuild), 1)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"bad"}]`), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "invalid catalog")
}
