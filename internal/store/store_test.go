package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-skills/internal/resume"
	"github.com/spigell/resume-skills/internal/skills"
)

func analysisAt(path string, at time.Time, names ...string) *resume.Analysis {
	findings := make([]skills.Finding, 0, len(names))
	for _, n := range names {
		findings = append(findings, skills.Finding{
			Skill: n, Confidence: skills.RuleBasedConfidence, Category: "backend",
			Method: skills.MethodRuleBased, Context: n, Matches: 1,
		})
	}
	return &resume.Analysis{
		ID:            uuid.New(),
		FilePath:      path,
		PredictedRole: resume.RolePrediction{PredictedRole: "Backend Developer", Confidence: 0.5},
		Skills:        skills.NewProfile(findings, len(findings), 0),
		Experience:    []resume.ExperienceEntry{},
		CreatedAt:     at,
	}
}

func openSQLite(t *testing.T) Store {
	t.Helper()
	s, err := Open(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "nested", "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteSaveAndGet(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	a := analysisAt("cv.pdf", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), "go", "python")
	require.NoError(t, s.Save(ctx, a))

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "cv.pdf", got.FilePath)
	assert.Equal(t, []string{"go", "python"}, got.Skills.SkillNames)
	assert.Equal(t, 2, got.Skills.SkillSummary.TotalSkills)
	assert.True(t, a.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLiteSaveOverwrites(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	a := analysisAt("cv.pdf", time.Now().UTC(), "go")
	require.NoError(t, s.Save(ctx, a))

	a.FilePath = "cv-v2.pdf"
	require.NoError(t, s.Save(ctx, a))

	records, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "cv-v2.pdf", records[0].FilePath)
}

func TestSQLiteListNewestFirst(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := analysisAt("old.pdf", base, "go")
	newer := analysisAt("new.pdf", base.Add(time.Hour), "go", "rust", "java")
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	records, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, 3, records[0].SkillCount)
	assert.Equal(t, "Backend Developer", records[0].PredictedRole)
	assert.Equal(t, older.ID, records[1].ID)

	records, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSQLiteListSubsecondOrder(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC)
	offsets := []time.Duration{
		0,
		100 * time.Millisecond,
		120 * time.Millisecond,
		500 * time.Millisecond,
	}

	saved := make([]*resume.Analysis, 0, len(offsets))
	for _, off := range offsets {
		a := analysisAt("cv.pdf", base.Add(off), "go")
		require.NoError(t, s.Save(ctx, a))
		saved = append(saved, a)
	}

	local := analysisAt("local.pdf", base.Add(300*time.Millisecond).In(time.FixedZone("UTC+3", 3*60*60)), "go")
	require.NoError(t, s.Save(ctx, local))

	records, err := s.List(ctx, 10)
	require.NoError(t, err)

	got := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		got = append(got, r.ID)
	}
	want := []uuid.UUID{saved[3].ID, local.ID, saved[2].ID, saved[1].ID, saved[0].ID}
	assert.Equal(t, want, got)
	assert.True(t, records[1].CreatedAt.Equal(local.CreatedAt))
}

func TestSQLiteGetMissing(t *testing.T) {
	s := openSQLite(t)

	_, err := s.Get(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSaveRejectsAnalysisWithoutID(t *testing.T) {
	s := openSQLite(t)

	a := analysisAt("cv.pdf", time.Now(), "go")
	a.ID = uuid.Nil
	assert.Error(t, s.Save(context.Background(), a))
}

func TestOpenEmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}
