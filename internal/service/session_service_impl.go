package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	today    func() domain.Date
	observer UseCaseObserver
}

// NewSessionService logs and lists swims. today anchors List windows.
func NewSessionService(sessions repository.SessionRepo, today func() domain.Date, observers ...UseCaseObserver) SessionService {
	if today == nil {
		today = func() domain.Date { return domain.DateOf(time.Now()) }
	}
	return &sessionService{sessions: sessions, today: today, observer: useCaseObserverOrNoop(observers)}
}

func (s *sessionService) Log(ctx context.Context, session *domain.TrainingSession) (err error) {
	fields := map[string]any{"type": string(session.Type), "distance_m": session.DistanceM}
	done := track(ctx, s.observer, "session-log", fields)
	defer func() { done(err) }()

	if err = session.Validate(); err != nil {
		return &PlanError{Code: CodeInvalidSession, Message: err.Error()}
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now().UTC().Truncate(time.Second)

	if err = s.sessions.Create(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fields["session_id"] = session.ID
	return nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.TrainingSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, CodeSessionNotFound, "session "+id)
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, days int) ([]domain.TrainingSession, error) {
	if days <= 0 {
		return s.sessions.List(ctx)
	}
	return s.sessions.ListSince(ctx, s.today().AddDays(-(days - 1)))
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	done := track(ctx, s.observer, "session-delete", map[string]any{"session_id": id})
	defer func() { done(err) }()

	if err = s.sessions.Delete(ctx, id); err != nil {
		return notFound(err, CodeSessionNotFound, "session "+id)
	}
	return nil
}
