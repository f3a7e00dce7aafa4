package cli

import (
	"testing"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileAnswers_RoundTrip(t *testing.T) {
	orig := testutil.NewTestProfile(cliToday.AddDays(45), testutil.WithTone(domain.ToneToughLove))
	answers := answersFrom(orig)
	assert.Equal(t, "2026-07-25", answers.eventDate)
	assert.ElementsMatch(t, []string{"pool", "open_water"}, answers.access)

	var got domain.AthleteProfile
	require.NoError(t, answers.apply(&got))
	assert.Equal(t, orig.Event, got.Event)
	assert.Equal(t, orig.LongestSwim, got.LongestSwim)
	assert.Equal(t, orig.Access, got.Access)
	assert.Equal(t, domain.ToneToughLove, got.Tone)
	assert.Equal(t, 3, got.Availability.SessionsPerWeek)
	assert.NoError(t, got.Validate())
}

func TestProfileAnswers_Defaults(t *testing.T) {
	a := answersFrom(nil)
	a.eventName = " Bay Swim "
	a.eventDate = "2026-09-01"
	a.eventDistance = "2000"
	a.targetTime = "0:45:00"

	var p domain.AthleteProfile
	require.NoError(t, a.apply(&p))
	assert.Equal(t, "Bay Swim", p.Event.Name)
	assert.Equal(t, domain.GoalFinishComfortably, p.Goal)
	assert.Empty(t, p.TargetTime, "target time only kept for the target_time goal")
	assert.True(t, p.Access.Pool)
	assert.False(t, p.Access.OpenWater)
	assert.Equal(t, domain.DefaultWeeklyVolumeM, p.WeeklyVolumeTarget())
	assert.Equal(t, time.September, p.Event.Date.Month())
}

func TestProfileAnswers_ApplyRejectsBadInput(t *testing.T) {
	a := answersFrom(nil)
	a.eventDate = "soon"
	assert.Error(t, a.apply(&domain.AthleteProfile{}))

	a.eventDate = "2026-09-01"
	a.weeklyVolume = "lots"
	assert.ErrorContains(t, a.apply(&domain.AthleteProfile{}), "weekly volume")
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveInt("5"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validateRequiredPositiveInt(""))
	assert.NoError(t, validateNonNegativeInt("0"))
	assert.Error(t, validateNonNegativeInt("-1"))
	assert.Error(t, validateSessionsPerWeek("15"))
	assert.NoError(t, validateSessionsPerWeek("14"))
	assert.Error(t, validateRequiredDate("2026/09/01"))
	assert.NoError(t, validateRequiredDate("2026-09-01"))
	assert.NotNil(t, profileWizard(answersFrom(nil)))
}
