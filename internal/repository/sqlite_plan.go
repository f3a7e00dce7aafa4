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

// SQLitePlanRepo persists plans as a JSON body next to the lineage columns
// used for lookups. The columns always win over the body on read.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

const planColumns = `id, parent_id, generation, operation, body_json, created_at`

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.SessionPlan) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding session plan: %w", err)
	}

	query := `INSERT INTO session_plans (id, parent_id, generation, operation, plan_date,
		session_type, template_id, body_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.Lineage.ID,
		nullableString(p.Lineage.ParentID),
		p.Lineage.Generation,
		string(p.Lineage.Operation),
		p.Date.String(),
		string(p.Session.Type),
		p.Provenance.TemplateID,
		string(body),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.SessionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM session_plans WHERE id = ?`
	p, err := scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session plan %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) ListChildren(ctx context.Context, parentID string) ([]domain.SessionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM session_plans WHERE parent_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing child plans: %w", err)
	}
	defer rows.Close()
	plans := []domain.SessionPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating child plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Latest(ctx context.Context) (*domain.SessionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM session_plans
		WHERE operation = 'generate'
		ORDER BY plan_date DESC, created_at DESC, rowid DESC LIMIT 1`
	p, err := scanPlan(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("latest session plan: %w", ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func scanPlan(row rowScanner) (*domain.SessionPlan, error) {
	var (
		p            domain.SessionPlan
		id, op, body string
		parentID     sql.NullString
		generation   int
		createdAtStr string
	)
	if err := row.Scan(&id, &parentID, &generation, &op, &body, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning session plan: %w", err)
	}
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, fmt.Errorf("decoding session plan %s: %w", id, err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	p.Lineage = domain.Lineage{
		ID:         id,
		ParentID:   parentID.String,
		Generation: generation,
		Operation:  domain.PlanOperation(op),
	}
	p.CreatedAt = createdAt
	return &p, nil
}
