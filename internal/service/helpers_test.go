package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/catalog"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/planner"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/testutil"
	"github.com/stretchr/testify/require"
)

var svcToday = domain.NewDate(2026, time.June, 10)

func svcClock() time.Time {
	return time.Date(2026, time.June, 10, 7, 0, 0, 0, time.UTC)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) byName(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	db       *sql.DB
	planner  *planner.Planner
	plans    PlanService
	sessions SessionService
	profiles ProfileService
	planRepo repository.PlanRepo
	sessRepo repository.SessionRepo
	profRepo repository.ProfileRepo
	observer *recordingObserver
}

func setup(t *testing.T) *fixture {
	t.Helper()
	return setupWithUoW(t, nil)
}

// setupWithUoW builds the services over one in-memory database. A nil uow
// uses the real SQLite unit of work.
func setupWithUoW(t *testing.T, uow func(*sql.DB) db.UnitOfWork) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat, err := catalog.Default()
	require.NoError(t, err)

	f := &fixture{
		db:       database,
		planner:  planner.New(cat, planner.WithClock(svcClock)),
		planRepo: repository.NewSQLitePlanRepo(database),
		sessRepo: repository.NewSQLiteSessionRepo(database),
		profRepo: repository.NewSQLiteProfileRepo(database),
		observer: &recordingObserver{},
	}
	work := testutil.NewTestUoW(database)
	if uow != nil {
		work = uow(database)
	}
	f.plans = NewPlanService(f.planner, f.planRepo, f.sessRepo, f.profRepo, nil, work, f.observer)
	f.sessions = NewSessionService(f.sessRepo, f.planner.Today, f.observer)
	f.profiles = NewProfileService(f.profRepo, f.observer)
	return f
}

// seedAthlete saves a profile 30 days out and a few moderate swims so the
// planner picks a regular BUILD session.
func (f *fixture) seedAthlete(t *testing.T, opts ...testutil.ProfileOption) *domain.AthleteProfile {
	t.Helper()
	ctx := context.Background()
	p := testutil.NewTestProfile(svcToday.AddDays(30), opts...)
	require.NoError(t, f.profRepo.Upsert(ctx, p))
	for _, daysAgo := range []int{2, 4, 6} {
		require.NoError(t, f.sessRepo.Create(ctx, testutil.NewTestSession(svcToday.AddDays(-daysAgo), 2000)))
	}
	return p
}

func requireCode(t *testing.T, err error, want PlanErrorCode) {
	t.Helper()
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok, "expected PlanError, got %v", err)
	require.Equal(t, want, code)
}
