package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/alumnet/admin-gateway/pkg/config"
)

// auditSchema is applied on boot so the optional audit trail needs no
// separate migration step.
const auditSchema = `CREATE TABLE IF NOT EXISTS audit_entries (
	id         TEXT PRIMARY KEY,
	actor_id   TEXT NOT NULL,
	action     TEXT NOT NULL,
	resource   TEXT NOT NULL,
	target_id  TEXT NOT NULL DEFAULT '',
	status     INT  NOT NULL,
	request_id TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
)`

// NewAuditPostgres returns a verified PostgreSQL client for the audit trail
// and ensures its table exists. The audit store is a low-volume side
// channel, so the pool stays small unless configured otherwise.
func NewAuditPostgres(cfg config.AuditConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 4
	}
	db.SetMaxOpenConns(maxOpen)
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(auditSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure audit schema: %w", err)
	}

	return db, nil
}
