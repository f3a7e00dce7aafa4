// Package polish layers coaching prose onto a finished plan. The plan's
// structure is authoritative: nothing here changes distances, reps or blocks.
package polish

import (
	"context"
	"slices"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/llm"
)

const MaxRecentSessions = 5

const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

type Request struct {
	Plan    domain.SessionPlan
	Profile domain.AthleteProfile
	Recent  []domain.TrainingSession
}

// Coaching is the prose returned alongside a plan.
type Coaching struct {
	WhyThis        string   `json:"why_this"`
	TechniqueFocus []string `json:"technique_focus"`
	EventPrepTip   *string  `json:"event_prep_tip"`
	Flags          []string `json:"flags"`
	Source         string   `json:"source"`
}

// Polisher produces coaching for a plan. Implementations never fail on
// collaborator errors; they fall back to DeterministicCoaching.
type Polisher interface {
	Polish(ctx context.Context, req Request) (*Coaching, error)
}

type service struct {
	client llm.LLMClient
}

// NewService returns a Polisher backed by client. A nil client always uses
// the deterministic fallback.
func NewService(client llm.LLMClient) Polisher {
	return &service{client: client}
}

func (s *service) Polish(ctx context.Context, req Request) (*Coaching, error) {
	if s.client == nil {
		return DeterministicCoaching(req.Plan, req.Profile), nil
	}

	prompt, err := buildUserPrompt(req)
	if err != nil {
		return DeterministicCoaching(req.Plan, req.Profile), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPolish,
		SystemPrompt: systemPrompt(req.Profile.Tone),
		UserPrompt:   prompt,
		JSON:         true,
	})
	if err != nil {
		return DeterministicCoaching(req.Plan, req.Profile), nil
	}

	coaching, err := llm.ExtractJSON[Coaching](resp.Text, ValidateCoaching)
	if err != nil {
		return DeterministicCoaching(req.Plan, req.Profile), nil
	}

	coaching.Source = SourceLLM
	normalize(&coaching)
	ensureSafetyFlag(&coaching, req.Plan)
	return &coaching, nil
}

// latest keeps the n most recent sessions, newest first.
func latest(sessions []domain.TrainingSession, n int) []domain.TrainingSession {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b domain.TrainingSession) int {
		return b.Date.Compare(a.Date.Time)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func normalize(c *Coaching) {
	if c.TechniqueFocus == nil {
		c.TechniqueFocus = []string{}
	}
	if c.Flags == nil {
		c.Flags = []string{}
	}
	if c.EventPrepTip != nil && *c.EventPrepTip == "" {
		c.EventPrepTip = nil
	}
}
