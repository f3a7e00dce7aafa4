package service

import (
	"context"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/importer"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/polish"
)

type PlanService interface {
	// Generate plans today's session. An empty preferred type follows the
	// profile's access.
	Generate(ctx context.Context, preferred domain.SessionType) (*domain.SessionPlan, error)
	// Adapt re-derives the lineage root for another session type.
	Adapt(ctx context.Context, planID string, newType domain.SessionType) (*domain.SessionPlan, error)
	// Scale rescales the nearest ancestor that is not itself a rescale.
	Scale(ctx context.Context, planID string, distanceM int) (*domain.SessionPlan, error)
	Get(ctx context.Context, planID string) (*domain.SessionPlan, error)
	Derived(ctx context.Context, planID string) ([]domain.SessionPlan, error)
	Latest(ctx context.Context) (*domain.SessionPlan, error)
	Coach(ctx context.Context, plan domain.SessionPlan) (*polish.Coaching, error)
	Metrics(ctx context.Context) (*MetricsReport, error)
}

type SessionService interface {
	Log(ctx context.Context, s *domain.TrainingSession) error
	GetByID(ctx context.Context, id string) (*domain.TrainingSession, error)
	// List returns sessions from the last days calendar days, newest first.
	// days <= 0 lists everything.
	List(ctx context.Context, days int) ([]domain.TrainingSession, error)
	Delete(ctx context.Context, id string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.AthleteProfile, error)
	Save(ctx context.Context, p *domain.AthleteProfile) error
}

// ImportService loads an exported history file atomically: either every
// session (and the profile, when present) is stored or nothing is.
type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	Import(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ImportResult struct {
	ProfileSaved bool        `json:"profile_saved"`
	SessionCount int         `json:"session_count"`
	From         domain.Date `json:"from"`
	To           domain.Date `json:"to"`
}

// MetricsReport is the training summary shown by `swim metrics`. Phase and
// DaysToEvent are only set when a profile exists.
type MetricsReport struct {
	Date         domain.Date      `json:"date"`
	Metrics      domain.Metrics   `json:"metrics"`
	Readiness    domain.Readiness `json:"readiness"`
	SafeCeilingM int              `json:"safe_ceiling_m"`
	Phase        domain.Phase     `json:"phase,omitempty"`
	DaysToEvent  *int             `json:"days_to_event,omitempty"`
}
