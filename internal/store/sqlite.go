package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/spigell/resume-skills/internal/resume"
)

// sqliteTimeLayout is fixed width so text order matches time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const sqliteSchema = `CREATE TABLE IF NOT EXISTS analyses (
	id             TEXT PRIMARY KEY,
	file_path      TEXT NOT NULL,
	predicted_role TEXT NOT NULL,
	skill_count    INTEGER NOT NULL,
	created_at     TEXT NOT NULL,
	payload        TEXT NOT NULL
)`

// SQLite stores analyses in a single database file.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Save(ctx context.Context, a *resume.Analysis) error {
	payload, err := encode(a)
	if err != nil {
		return err
	}
	r := recordOf(a)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, file_path, predicted_role, skill_count, created_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET file_path = excluded.file_path, predicted_role = excluded.predicted_role,
		 skill_count = excluded.skill_count, created_at = excluded.created_at, payload = excluded.payload`,
		r.ID.String(), r.FilePath, r.PredictedRole, r.SkillCount, r.CreatedAt.UTC().Format(sqliteTimeLayout), string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, id uuid.UUID) (*resume.Analysis, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM analyses WHERE id = ?`, id.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}
	return decode([]byte(payload))
}

func (s *SQLite) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, file_path, predicted_role, skill_count, created_at
		 FROM analyses ORDER BY created_at DESC, id LIMIT ?`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			r         Record
			id        string
			createdAt string
		)
		if err := rows.Scan(&id, &r.FilePath, &r.PredictedRole, &r.SkillCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid analysis id %q: %w", id, err)
		}
		if r.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
