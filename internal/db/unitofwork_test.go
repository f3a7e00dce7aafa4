package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUnitOfWork(t *testing.T) (*db.SQLiteUnitOfWork, *sql.DB) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database), database
}

func insertSession(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO swim_sessions (id, session_date, type, distance_m, effort, created_at)
		 VALUES (?, '2026-06-01', 'pool', 1500, 'easy', '2026-06-01T10:00:00Z')`, id)
	return err
}

func sessionExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM swim_sessions WHERE id = ?`, id).Scan(&n))
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, database := openUnitOfWork(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSession(ctx, tx, "s1")
	})
	require.NoError(t, err)
	assert.True(t, sessionExists(t, database, "s1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, database := openUnitOfWork(t)
	errLater := errors.New("plan insert failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSession(ctx, tx, "s2"); err != nil {
			return err
		}
		return errLater
	})
	require.ErrorIs(t, err, errLater)
	assert.False(t, sessionExists(t, database, "s2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, database := openUnitOfWork(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSession(ctx, tx, "s3")
			panic("boom")
		})
	})
	assert.False(t, sessionExists(t, database, "s3"))
}
