package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alumnet/admin-gateway/internal/models"
)

// AuditRepository persists the admin-action audit trail.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record writes one audit entry. ID and CreatedAt are assigned here.
func (r *AuditRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	const query = `INSERT INTO audit_entries (id, actor_id, action, resource, target_id, status, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.ActorID, entry.Action, entry.Resource,
		entry.TargetID, entry.Status, entry.RequestID, entry.CreatedAt); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

// ListRecent returns the most recent audit entries, newest first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	const query = `SELECT id, actor_id, action, resource, target_id, status, request_id, created_at
		FROM audit_entries ORDER BY created_at DESC LIMIT $1`
	entries := []models.AuditEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
