package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-skills/internal/config"
)

func TestExcludedSkillsFromMissingFile(t *testing.T) {
	excluded, err := GetExcludedSkillsFromFile(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, excluded.Items)
}

func TestExcludedSkillsFromEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	excluded, err := GetExcludedSkillsFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, excluded.Items)
}

func TestAppendToFileDeduplicates(t *testing.T) {
	for _, name := range []string{"exclude.json", "exclude.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			_, err := AppendToFile(path, "noise", "Excel", " ")
			require.NoError(t, err)
			_, err = AppendToFile(path, "again", "excel", "slack")
			require.NoError(t, err)

			excluded, err := GetExcludedSkillsFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"excel", "slack"}, excluded.Skills())
			assert.Equal(t, "noise", excluded.Items[0].Reason)
			assert.False(t, excluded.Items[0].ExcludedAt.IsZero())
		})
	}
}

func TestExcludedSkillsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := GetExcludedSkillsFromFile(path)
	assert.Error(t, err)
}

func TestNewTaxonomyFromConfig(t *testing.T) {
	taxonomy := NewTaxonomy(config.Skills{
		Custom: map[string][]string{
			"backend": {"Encore", "python"},
			"quantum": {"Qiskit"},
		},
		ExcludeCategories: []string{"soft_skills"},
	})

	assert.Equal(t, "backend", taxonomy.CategoryOf("encore"))
	assert.Equal(t, "quantum", taxonomy.CategoryOf("qiskit"))

	for _, c := range taxonomy.Categories() {
		assert.NotEqual(t, "soft_skills", c.Name)
	}
	last := taxonomy.Categories()[len(taxonomy.Categories())-1]
	assert.Equal(t, "quantum", last.Name)
}
