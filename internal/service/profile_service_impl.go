package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context) (*domain.AthleteProfile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, notFound(err, CodeProfileMissing, "athlete profile")
	}
	return p, nil
}

// Save validates and replaces the stored profile. An unset tone is stored
// as neutral.
func (s *profileService) Save(ctx context.Context, p *domain.AthleteProfile) (err error) {
	done := track(ctx, s.observer, "profile-save", map[string]any{"event": p.Event.Name})
	defer func() { done(err) }()

	if p.Tone == "" {
		p.Tone = domain.ToneNeutral
	}
	if err = p.Validate(); err != nil {
		return &PlanError{Code: CodeInvalidProfile, Message: err.Error()}
	}
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	if err = s.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
