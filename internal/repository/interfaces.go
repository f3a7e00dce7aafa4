package repository

import (
	"context"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.TrainingSession) error
	GetByID(ctx context.Context, id string) (*domain.TrainingSession, error)
	// List returns every session, newest first.
	List(ctx context.Context) ([]domain.TrainingSession, error)
	// ListSince returns sessions on or after since, newest first.
	ListSince(ctx context.Context, since domain.Date) ([]domain.TrainingSession, error)
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.AthleteProfile, error)
	Upsert(ctx context.Context, p *domain.AthleteProfile) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.SessionPlan) error
	GetByID(ctx context.Context, id string) (*domain.SessionPlan, error)
	ListChildren(ctx context.Context, parentID string) ([]domain.SessionPlan, error)
	// Latest returns the most recently created generated plan.
	Latest(ctx context.Context) (*domain.SessionPlan, error)
}
