package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spigell/resume-skills/internal/resume"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS analyses (
	id             UUID PRIMARY KEY,
	file_path      TEXT NOT NULL,
	predicted_role TEXT NOT NULL,
	skill_count    INTEGER NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	payload        JSONB NOT NULL
)`

// Postgres stores analyses in a PostgreSQL database.
type Postgres struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Save(ctx context.Context, a *resume.Analysis) error {
	payload, err := encode(a)
	if err != nil {
		return err
	}
	r := recordOf(a)

	_, err = p.pool.Exec(ctx,
		`INSERT INTO analyses (id, file_path, predicted_role, skill_count, created_at, payload)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET file_path = $2, predicted_role = $3, skill_count = $4,
		 created_at = $5, payload = $6`,
		r.ID, r.FilePath, r.PredictedRole, r.SkillCount, r.CreatedAt, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", r.ID, err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, id uuid.UUID) (*resume.Analysis, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx, `SELECT payload FROM analyses WHERE id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}
	return decode(payload)
}

func (p *Postgres) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, file_path, predicted_role, skill_count, created_at
		 FROM analyses ORDER BY created_at DESC, id LIMIT $1`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.FilePath, &r.PredictedRole, &r.SkillCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
