package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/planner"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/polish"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
	"github.com/google/uuid"
)

// maxLineageDepth bounds ancestor walks.
const maxLineageDepth = 64

type planService struct {
	planner  *planner.Planner
	plans    repository.PlanRepo
	sessions repository.SessionRepo
	profiles repository.ProfileRepo
	polisher polish.Polisher
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(
	p *planner.Planner,
	plans repository.PlanRepo,
	sessions repository.SessionRepo,
	profiles repository.ProfileRepo,
	polisher polish.Polisher,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	if polisher == nil {
		polisher = polish.NewService(nil)
	}
	return &planService{
		planner:  p,
		plans:    plans,
		sessions: sessions,
		profiles: profiles,
		polisher: polisher,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, preferred domain.SessionType) (plan *domain.SessionPlan, err error) {
	fields := map[string]any{"preferred": string(preferred)}
	done := track(ctx, s.observer, "plan-generate", fields)
	defer func() { done(err) }()

	if preferred != "" && !domain.ValidSessionTypes[preferred] {
		return nil, invalidSessionType(preferred)
	}

	pc, err := loadContext(ctx, s.profiles, s.sessions)
	if err != nil {
		return nil, err
	}
	profile, err := pc.requireProfile()
	if err != nil {
		return nil, err
	}

	out := s.planner.GenerateSessionPlan(profile, pc.history, preferred)
	if err = store(ctx, s.plans, &out); err != nil {
		return nil, err
	}

	fields["plan_id"] = out.Lineage.ID
	fields["phase"] = string(out.Phase)
	fields["template"] = out.Provenance.TemplateID
	fields["readiness"] = string(out.Readiness.Status)
	return &out, nil
}

func (s *planService) Adapt(ctx context.Context, planID string, newType domain.SessionType) (plan *domain.SessionPlan, err error) {
	fields := map[string]any{"plan_id": planID, "type": string(newType)}
	done := track(ctx, s.observer, "plan-adapt", fields)
	defer func() { done(err) }()

	if !domain.ValidSessionTypes[newType] {
		return nil, invalidSessionType(newType)
	}

	pc, err := loadContext(ctx, s.profiles, s.sessions)
	if err != nil {
		return nil, err
	}
	profile, err := pc.requireProfile()
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		root, err := rootOf(ctx, plans, planID)
		if err != nil {
			return err
		}

		m := planner.CalculateRecentMetrics(pc.history, root.Date)
		out := s.planner.AdaptPlanToType(*root, newType, profile, m)
		if out.Lineage.ID != "" {
			// Rest plans come back untouched.
			plan = root
			return nil
		}
		if err := store(ctx, plans, &out); err != nil {
			return err
		}
		plan = &out
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["result_id"] = plan.Lineage.ID
	fields["generation"] = plan.Lineage.Generation
	return plan, nil
}

func (s *planService) Scale(ctx context.Context, planID string, distanceM int) (plan *domain.SessionPlan, err error) {
	fields := map[string]any{"plan_id": planID, "distance_m": distanceM}
	done := track(ctx, s.observer, "plan-scale", fields)
	defer func() { done(err) }()

	if distanceM <= 0 {
		return nil, &PlanError{Code: CodeInvalidDistance, Message: fmt.Sprintf("distance %dm must be positive", distanceM)}
	}

	pc, err := loadContext(ctx, s.profiles, s.sessions)
	if err != nil {
		return nil, err
	}
	profile, err := pc.requireProfile()
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		base, err := scaleBaseOf(ctx, plans, planID)
		if err != nil {
			return err
		}

		m := planner.CalculateRecentMetrics(pc.history, base.Date)
		out := s.planner.ScalePlanToDistance(*base, distanceM, profile, m)
		if out.Lineage.ID != "" {
			plan = base
			return nil
		}
		if err := store(ctx, plans, &out); err != nil {
			return err
		}
		plan = &out
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["result_id"] = plan.Lineage.ID
	fields["base_id"] = plan.Lineage.ParentID
	return plan, nil
}

func (s *planService) Get(ctx context.Context, planID string) (*domain.SessionPlan, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, notFound(err, CodePlanNotFound, "plan "+planID)
	}
	return p, nil
}

func (s *planService) Derived(ctx context.Context, planID string) ([]domain.SessionPlan, error) {
	if _, err := s.Get(ctx, planID); err != nil {
		return nil, err
	}
	children, err := s.plans.ListChildren(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("listing derived plans: %w", err)
	}
	return children, nil
}

func (s *planService) Latest(ctx context.Context) (*domain.SessionPlan, error) {
	p, err := s.plans.Latest(ctx)
	if err != nil {
		return nil, notFound(err, CodePlanNotFound, "generated plan")
	}
	return p, nil
}

func (s *planService) Coach(ctx context.Context, plan domain.SessionPlan) (c *polish.Coaching, err error) {
	fields := map[string]any{"plan_id": plan.Lineage.ID}
	done := track(ctx, s.observer, "plan-coach", fields)
	defer func() { done(err) }()

	pc, err := loadContext(ctx, s.profiles, s.sessions)
	if err != nil {
		return nil, err
	}
	profile, err := pc.requireProfile()
	if err != nil {
		return nil, err
	}

	c, err = s.polisher.Polish(ctx, polish.Request{
		Plan:    plan,
		Profile: profile,
		Recent:  planner.RecentSessions(pc.history, plan.Date, planner.ReadinessWindowDays),
	})
	if err != nil {
		return nil, fmt.Errorf("polishing plan: %w", err)
	}
	fields["source"] = c.Source
	return c, nil
}

func (s *planService) Metrics(ctx context.Context) (*MetricsReport, error) {
	pc, err := loadContext(ctx, s.profiles, s.sessions)
	if err != nil {
		return nil, err
	}

	today := s.planner.Today()
	m := planner.CalculateRecentMetrics(pc.history, today)
	report := &MetricsReport{
		Date:         today,
		Metrics:      m,
		Readiness:    planner.AssessReadiness(planner.RecentSessions(pc.history, today, planner.ReadinessWindowDays), today),
		SafeCeilingM: int(math.Round(planner.SafeCeilingM(m))),
	}
	if pc.profile != nil {
		phase, days := planner.ClassifyPhase(pc.profile.Event.Date, today)
		report.Phase = phase
		report.DaysToEvent = &days
	}
	return report, nil
}

// store assigns identity and persists a freshly computed plan.
func store(ctx context.Context, plans repository.PlanRepo, p *domain.SessionPlan) error {
	p.Lineage.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if err := plans.Create(ctx, p); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

// rootOf follows parent links back to the generated plan.
func rootOf(ctx context.Context, plans repository.PlanRepo, id string) (*domain.SessionPlan, error) {
	return walkUp(ctx, plans, id, func(p *domain.SessionPlan) bool {
		return p.Lineage.Generation > 0
	})
}

// scaleBaseOf skips past rescaled plans so ratios never compound.
func scaleBaseOf(ctx context.Context, plans repository.PlanRepo, id string) (*domain.SessionPlan, error) {
	return walkUp(ctx, plans, id, func(p *domain.SessionPlan) bool {
		return p.Lineage.Operation == domain.OpScale
	})
}

// walkUp loads id then climbs to the parent while climb holds. A dangling
// parent link stops the walk at the last plan found.
func walkUp(ctx context.Context, plans repository.PlanRepo, id string, climb func(*domain.SessionPlan) bool) (*domain.SessionPlan, error) {
	cur, err := plans.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, CodePlanNotFound, "plan "+id)
	}
	for depth := 0; depth < maxLineageDepth && climb(cur) && cur.Lineage.ParentID != ""; depth++ {
		parent, err := plans.GetByID(ctx, cur.Lineage.ParentID)
		if errors.Is(err, repository.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading parent plan: %w", err)
		}
		cur = parent
	}
	return cur, nil
}
