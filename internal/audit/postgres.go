package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresRecorder struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*PostgresRecorder, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	r := &PostgresRecorder{db: db}
	if err := r.migrate(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRecorder) migrate(ctx context.Context) error {
	// Note: in production, use a dedicated migration tool (e.g.,
	// golang-migrate/migrate) run as a separate deployment step.
	const stmt = `CREATE TABLE IF NOT EXISTS verifications (
		id UUID PRIMARY KEY,
		request_id TEXT,
		principal TEXT,
		issue TEXT,
		priority TEXT,
		duration_ms BIGINT,
		created_at TIMESTAMPTZ DEFAULT now()
	);`
	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create verifications table: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) Record(ctx context.Context, e Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO verifications (id, request_id, principal, issue, priority, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.RequestID, e.Principal, e.Issue, e.Priority, e.DurationMS, e.CreatedAt,
	)
	return err
}

func (r *PostgresRecorder) Close() error {
	return r.db.Close()
}
