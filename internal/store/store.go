// Package store persists analyses in SQLite or PostgreSQL.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/resume-skills/internal/resume"
)

// ErrNotFound is returned when no analysis has the requested ID.
var ErrNotFound = errors.New("analysis not found")

// Record is the listing view of a stored analysis.
type Record struct {
	ID            uuid.UUID `json:"id"`
	FilePath      string    `json:"file_path"`
	PredictedRole string    `json:"predicted_role"`
	SkillCount    int       `json:"skill_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store saves and loads analyses.
type Store interface {
	Save(ctx context.Context, analysis *resume.Analysis) error
	Get(ctx context.Context, id uuid.UUID) (*resume.Analysis, error)
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// Open connects to the database named by dsn. postgres:// and postgresql:// URLs use
// PostgreSQL; anything else is a SQLite path, optionally prefixed with sqlite://.
func Open(ctx context.Context, dsn string) (Store, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return nil, errors.New("store dsn is empty")
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(ctx, dsn)
	default:
		return OpenSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"))
	}
}

func recordOf(a *resume.Analysis) Record {
	count := 0
	if a.Skills != nil {
		count = len(a.Skills.DetailedSkills)
	}
	return Record{
		ID:            a.ID,
		FilePath:      a.FilePath,
		PredictedRole: a.PredictedRole.PredictedRole,
		SkillCount:    count,
		CreatedAt:     a.CreatedAt.UTC(),
	}
}

func encode(a *resume.Analysis) ([]byte, error) {
	if a == nil {
		return nil, errors.New("analysis is nil")
	}
	if a.ID == uuid.Nil {
		return nil, errors.New("analysis has no id")
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return payload, nil
}

func decode(payload []byte) (*resume.Analysis, error) {
	var a resume.Analysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &a, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return 100
	}
	return limit
}
