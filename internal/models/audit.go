package models

import "time"

// AuditEntry records one admin-initiated mutation relayed upstream.
type AuditEntry struct {
	ID        string    `db:"id" json:"id"`
	ActorID   string    `db:"actor_id" json:"actor_id"`
	Action    string    `db:"action" json:"action"`
	Resource  string    `db:"resource" json:"resource"`
	TargetID  string    `db:"target_id" json:"target_id"`
	Status    int       `db:"status" json:"status"`
	RequestID string    `db:"request_id" json:"request_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
