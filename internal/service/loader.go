package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
	"golang.org/x/sync/errgroup"
)

// planContext is everything the planner reads besides the catalog.
type planContext struct {
	profile *domain.AthleteProfile // nil when none is saved
	history []domain.TrainingSession
}

func (pc *planContext) requireProfile() (domain.AthleteProfile, error) {
	if pc.profile == nil {
		return domain.AthleteProfile{}, &PlanError{
			Code:    CodeProfileMissing,
			Message: "no athlete profile saved; run `swim profile init` first",
		}
	}
	return *pc.profile, nil
}

// loadContext reads the profile and full history concurrently. Both are
// plain reads, so they never run inside a unit of work.
func loadContext(ctx context.Context, profiles repository.ProfileRepo, sessions repository.SessionRepo) (*planContext, error) {
	var pc planContext
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := profiles.Get(gctx)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		pc.profile = p
		return nil
	})
	g.Go(func() error {
		h, err := sessions.List(gctx)
		if err != nil {
			return fmt.Errorf("loading sessions: %w", err)
		}
		pc.history = h
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &pc, nil
}
