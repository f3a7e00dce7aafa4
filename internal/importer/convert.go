package importer

import (
	"fmt"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/google/uuid"
)

// Converted is a validated history file ready for persistence.
type Converted struct {
	Profile  *domain.AthleteProfile
	Sessions []*domain.TrainingSession
}

// Convert turns a validated schema into domain objects with fresh IDs.
// Call ValidateImportSchema first.
func Convert(schema *ImportSchema, now time.Time) (*Converted, error) {
	now = now.UTC().Truncate(time.Second)
	out := &Converted{Sessions: make([]*domain.TrainingSession, 0, len(schema.Sessions))}

	if schema.Profile != nil {
		p := *schema.Profile
		if p.Tone == "" {
			p.Tone = domain.ToneNeutral
		}
		p.UpdatedAt = now
		out.Profile = &p
	}

	for i, s := range schema.Sessions {
		date, err := domain.ParseDate(s.Date)
		if err != nil {
			return nil, fmt.Errorf("sessions[%d]: %w", i, err)
		}
		ts := &domain.TrainingSession{
			ID:         uuid.New().String(),
			Date:       date,
			Type:       domain.SessionType(s.Type),
			DistanceM:  s.DistanceM,
			Effort:     domain.EffortLevel(s.Effort),
			Notes:      s.Notes,
			Conditions: s.Conditions,
			CreatedAt:  now,
		}
		if s.TimeMin != nil {
			ts.DurationMin = *s.TimeMin
		}
		if s.RPE != nil {
			rpe := *s.RPE
			ts.RPE = &rpe
		}
		out.Sessions = append(out.Sessions, ts)
	}

	return out, nil
}
