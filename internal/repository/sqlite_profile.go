package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

// SQLiteProfileRepo stores the single athlete profile. Nested values are kept
// as JSON columns.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.AthleteProfile, error) {
	query := `SELECT goal, target_time, weekly_volume_m, longest_swim_json, access_pool,
		access_open_water, tone, availability_json, event_json, updated_at
		FROM athlete_profile WHERE id = 'default'`

	var (
		p                                 domain.AthleteProfile
		goal, tone                        string
		longestJSON, availJSON, eventJSON string
		pool, openWater                   int
		updatedAtStr                      string
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&goal, &p.TargetTime, &p.WeeklyVolumeM, &longestJSON, &pool,
		&openWater, &tone, &availJSON, &eventJSON, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("athlete profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning athlete profile: %w", err)
	}

	p.Goal = domain.Goal(goal)
	p.Tone = domain.Tone(tone)
	p.Access = domain.Access{Pool: intToBool(pool), OpenWater: intToBool(openWater)}
	if err := json.Unmarshal([]byte(longestJSON), &p.LongestSwim); err != nil {
		return nil, fmt.Errorf("decoding longest swim: %w", err)
	}
	if err := json.Unmarshal([]byte(availJSON), &p.Availability); err != nil {
		return nil, fmt.Errorf("decoding availability: %w", err)
	}
	if err := json.Unmarshal([]byte(eventJSON), &p.Event); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.AthleteProfile) error {
	longest, err := json.Marshal(p.LongestSwim)
	if err != nil {
		return fmt.Errorf("encoding longest swim: %w", err)
	}
	avail, err := json.Marshal(p.Availability)
	if err != nil {
		return fmt.Errorf("encoding availability: %w", err)
	}
	event, err := json.Marshal(p.Event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	query := `INSERT OR REPLACE INTO athlete_profile (id, goal, target_time, weekly_volume_m,
		longest_swim_json, access_pool, access_open_water, tone, availability_json, event_json, updated_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		string(p.Goal),
		p.TargetTime,
		p.WeeklyVolumeM,
		string(longest),
		boolToInt(p.Access.Pool),
		boolToInt(p.Access.OpenWater),
		string(p.Tone),
		string(avail),
		string(event),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting athlete profile: %w", err)
	}
	return nil
}
