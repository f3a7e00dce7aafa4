package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const sessionColumns = `id, session_date, type, distance_m, duration_min, effort, rpe, notes, conditions, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.TrainingSession) error {
	query := `INSERT INTO swim_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date.String(),
		string(s.Type),
		s.DistanceM,
		s.DurationMin,
		nullableString(string(s.Effort)),
		nullableIntToValue(s.RPE),
		s.Notes,
		s.Conditions,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting swim session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.TrainingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM swim_sessions WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("swim session %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]domain.TrainingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM swim_sessions ORDER BY session_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing swim sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListSince(ctx context.Context, since domain.Date) ([]domain.TrainingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM swim_sessions
		WHERE session_date >= ?
		ORDER BY session_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, since.String())
	if err != nil {
		return nil, fmt.Errorf("listing swim sessions since %s: %w", since, err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM swim_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting swim session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting swim session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("swim session %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.TrainingSession, error) {
	var (
		s                domain.TrainingSession
		dateStr, typeStr string
		createdAtStr     string
		effort           sql.NullString
		rpe              sql.NullInt64
	)
	err := row.Scan(
		&s.ID, &dateStr, &typeStr, &s.DistanceM, &s.DurationMin,
		&effort, &rpe, &s.Notes, &s.Conditions, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning swim session: %w", err)
	}

	if s.Date, err = domain.ParseDate(dateStr); err != nil {
		return nil, fmt.Errorf("parsing session_date: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.Type = domain.SessionType(typeStr)
	s.Effort = domain.EffortLevel(effort.String)
	s.RPE = nullableIntFromSQL(rpe)
	return &s, nil
}

func scanSessions(rows *sql.Rows) ([]domain.TrainingSession, error) {
	sessions := []domain.TrainingSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating swim sessions: %w", err)
	}
	return sessions, nil
}
