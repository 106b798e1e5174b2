package skills

import (
	"slices"
	"testing"
)

func TestTaxonomyLastCategoryWins(t *testing.T) {
	t.Parallel()

	tx := DefaultTaxonomy()
	tests := map[string]string{
		"python":      "data_engineering",
		"c":           "programming_languages",
		"kafka":       "message_queue_and_streaming",
		"react":       "frontend",
		"unknown-xyz": OtherCategory,
	}
	for skill, want := range tests {
		if got := tx.CategoryOf(skill); got != want {
			t.Fatalf("CategoryOf(%q) = %q, want %q", skill, got, want)
		}
	}
}

func TestTaxonomyKeepsDuplicatesInFlatOrder(t *testing.T) {
	t.Parallel()

	tx := NewTaxonomy([]Category{
		{Name: "a", Skills: []string{"go", "rust"}},
		{Name: "b", Skills: []string{"go"}},
	})
	if got := tx.Skills(); !slices.Equal(got, []string{"go", "rust", "go"}) {
		t.Fatalf("Skills() = %v", got)
	}
	if got := tx.CategoryOf("go"); got != "b" {
		t.Fatalf("CategoryOf(go) = %q, want b", got)
	}
}

func TestTaxonomyMerge(t *testing.T) {
	t.Parallel()

	base := NewTaxonomy([]Category{{Name: "backend", Skills: []string{"go", "rust"}}})
	merged := base.Merge([]Category{
		{Name: "backend", Skills: []string{"rust", "zig"}},
		{Name: "cloud", Skills: []string{"aws"}},
	})

	cats := merged.Categories()
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if !slices.Equal(cats[0].Skills, []string{"go", "rust", "zig"}) {
		t.Fatalf("backend = %v", cats[0].Skills)
	}
	if cats[1].Name != "cloud" {
		t.Fatalf("new category appended as %q", cats[1].Name)
	}
	if got := base.Skills(); !slices.Equal(got, []string{"go", "rust"}) {
		t.Fatalf("base taxonomy mutated: %v", got)
	}
}

func TestTaxonomyWithout(t *testing.T) {
	t.Parallel()

	tx := DefaultTaxonomy().Without("soft_skills")
	for _, c := range tx.Categories() {
		if c.Name == "soft_skills" {
			t.Fatalf("soft_skills still present")
		}
	}
	if got := tx.CategoryOf("teamwork"); got != OtherCategory {
		t.Fatalf("CategoryOf(teamwork) = %q", got)
	}
}

func TestDefaultVocabularyEntries(t *testing.T) {
	t.Parallel()

	tx := DefaultTaxonomy()
	for skill, want := range map[string]string{
		"mui":     "frontend",
		"next.js": "frontend",
		"bson":    "backend",
		"slim":    "backend",
	} {
		if got := tx.CategoryOf(skill); got != want {
			t.Fatalf("%s category = %q, want %q", skill, got, want)
		}
	}

	for _, glued := range []string{"muinext.js", "bsonphp", "slim "} {
		if slices.Contains(tx.Skills(), glued) {
			t.Fatalf("vocabulary contains %q", glued)
		}
	}
}
