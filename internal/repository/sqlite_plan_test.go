package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testutil.NewTestPlan(repoToday)
	require.NoError(t, repo.Create(ctx, plan))

	got, err := repo.GetByID(ctx, plan.Lineage.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(*plan, *got); diff != "" {
		t.Errorf("stored plan differs (-want +got):\n%s", diff)
	}
}

func TestPlanRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_LineageColumns(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	root := testutil.NewTestPlan(repoToday)
	require.NoError(t, repo.Create(ctx, root))
	adapted := testutil.NewTestPlan(repoToday,
		testutil.WithParent(root, domain.OpAdapt),
		testutil.WithPlanSessionType(domain.SessionOpenWater))
	require.NoError(t, repo.Create(ctx, adapted))
	scaled := testutil.NewTestPlan(repoToday, testutil.WithParent(adapted, domain.OpScale))
	require.NoError(t, repo.Create(ctx, scaled))

	got, err := repo.GetByID(ctx, scaled.Lineage.ID)
	require.NoError(t, err)
	assert.Equal(t, adapted.Lineage.ID, got.Lineage.ParentID)
	assert.Equal(t, 2, got.Lineage.Generation)
	assert.Equal(t, domain.OpScale, got.Lineage.Operation)

	children, err := repo.ListChildren(ctx, root.Lineage.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, adapted.Lineage.ID, children[0].Lineage.ID)
	assert.Equal(t, domain.SessionOpenWater, children[0].Session.Type)
}

func TestPlanRepo_LatestSkipsDerivedPlans(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	yesterday := testutil.NewTestPlan(repoToday.AddDays(-1))
	today := testutil.NewTestPlan(repoToday)
	derived := testutil.NewTestPlan(repoToday, testutil.WithParent(today, domain.OpScale))
	for _, p := range []*domain.SessionPlan{today, yesterday, derived} {
		require.NoError(t, repo.Create(ctx, p))
	}

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, today.Lineage.ID, got.Lineage.ID)
}

func TestPlanRepo_RollbackWithinTx(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()
	plan := testutil.NewTestPlan(repoToday)
	errAbort := errors.New("abort")

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := NewSQLitePlanRepo(tx).Create(ctx, plan); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	_, err = NewSQLitePlanRepo(database).GetByID(ctx, plan.Lineage.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_FailingExecSurfaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	errDisk := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: errDisk}

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return NewSQLitePlanRepo(tx).Create(ctx, testutil.NewTestPlan(repoToday))
	})
	assert.ErrorIs(t, err, errDisk)
}
