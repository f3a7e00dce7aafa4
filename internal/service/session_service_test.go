package service

import (
	"context"
	"testing"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSession_AssignsIdentity(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	s := testutil.NewTestSession(svcToday, 1800, testutil.WithConditions("choppy, 17C"))
	s.ID = ""
	require.NoError(t, f.sessions.Log(ctx, s))
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())

	got, err := f.sessions.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800, got.DistanceM)
	assert.Equal(t, "choppy, 17C", got.Conditions)

	events := f.observer.byName("session-log")
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
}

func TestLogSession_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	cases := map[string]*domain.TrainingSession{
		"zero distance": testutil.NewTestSession(svcToday, 0),
		"bad type":      testutil.NewTestSession(svcToday, 1000, testutil.WithSessionType("lake")),
		"rpe too high":  testutil.NewTestSession(svcToday, 1000, testutil.WithRPE(11)),
		"no date":       testutil.NewTestSession(domain.Date{}, 1000),
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			requireCode(t, f.sessions.Log(ctx, s), CodeInvalidSession)
		})
	}

	all, err := f.sessions.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLogSession_LegacyRPEAccepted(t *testing.T) {
	f := setup(t)
	s := testutil.NewTestSession(svcToday, 1200, testutil.WithRPE(7))
	require.NoError(t, f.sessions.Log(context.Background(), s))
	assert.Equal(t, domain.EffortHard, s.EffortBucket())
}

func TestListSessions_Window(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	for _, daysAgo := range []int{0, 6, 7, 20} {
		require.NoError(t, f.sessions.Log(ctx, testutil.NewTestSession(svcToday.AddDays(-daysAgo), 1000+daysAgo)))
	}

	week, err := f.sessions.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, svcToday, week[0].Date, "newest first")
	assert.Equal(t, 1006, week[1].DistanceM)

	all, err := f.sessions.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDeleteSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	s := testutil.NewTestSession(svcToday, 1500)
	require.NoError(t, f.sessions.Log(ctx, s))
	require.NoError(t, f.sessions.Delete(ctx, s.ID))

	_, err := f.sessions.GetByID(ctx, s.ID)
	requireCode(t, err, CodeSessionNotFound)
	requireCode(t, f.sessions.Delete(ctx, s.ID), CodeSessionNotFound)
}
