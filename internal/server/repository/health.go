package repository

import (
	"context"
	"database/sql"
	"time"
)

// HealthRepository проверяет доступность БД.
type HealthRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewHealthRepository(db *sql.DB, timeout time.Duration) *HealthRepository {
	return &HealthRepository{db: db, timeout: timeout}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.PingContext(ctx)
}
