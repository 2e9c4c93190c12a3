package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnet/admin-gateway/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestAuditRepositoryRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO audit_entries").
		WithArgs(sqlmock.AnyArg(), "u-1", "delete", "events", "ev-9", 200, "req-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &models.AuditEntry{
		ActorID:   "u-1",
		Action:    "delete",
		Resource:  "events",
		TargetID:  "ev-9",
		Status:    200,
		RequestID: "req-1",
	}
	require.NoError(t, repo.Record(context.Background(), entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "actor_id", "action", "resource", "target_id", "status", "request_id", "created_at"}).
		AddRow("a-2", "u-1", "update", "jobs", "job-3", 200, "req-2", now).
		AddRow("a-1", "u-1", "create", "events", "", 200, "req-1", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM audit_entries ORDER BY created_at DESC").
		WithArgs(20).
		WillReturnRows(rows)

	entries, err := repo.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a-2", entries[0].ID)
	assert.Equal(t, "jobs", entries[0].Resource)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListRecentClampsLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM audit_entries").
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "actor_id", "action", "resource", "target_id", "status", "request_id", "created_at"}))

	entries, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
