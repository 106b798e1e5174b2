package skills

import "slices"

// OtherCategory is assigned to skills that are not part of the taxonomy.
const OtherCategory = "other"

// Category is a named, ordered group of skills.
type Category struct {
	Name   string   `json:"name" mapstructure:"name"`
	Skills []string `json:"skills" mapstructure:"skills"`
}

// Taxonomy is an immutable, ordered category -> skills mapping. A skill may be listed
// under several categories; the lookup keeps the last category seen while flattening.
type Taxonomy struct {
	categories []Category
	flat       []string
	lookup     map[string]string
}

func NewTaxonomy(categories []Category) *Taxonomy {
	t := &Taxonomy{
		categories: make([]Category, 0, len(categories)),
		lookup:     make(map[string]string),
	}

	for _, c := range categories {
		skills := slices.Clone(c.Skills)
		t.categories = append(t.categories, Category{Name: c.Name, Skills: skills})
		t.flat = append(t.flat, skills...)
		for _, s := range skills {
			t.lookup[s] = c.Name
		}
	}

	return t
}

// DefaultTaxonomy returns the built-in technical and soft-skill vocabulary.
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy(defaultCategories)
}

// Categories returns a copy of the ordered categories.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, 0, len(t.categories))
	for _, c := range t.categories {
		out = append(out, Category{Name: c.Name, Skills: slices.Clone(c.Skills)})
	}
	return out
}

// Skills returns every skill in flattening order, duplicates included.
func (t *Taxonomy) Skills() []string {
	return slices.Clone(t.flat)
}

// CategoryOf returns the category of skill or OtherCategory.
func (t *Taxonomy) CategoryOf(skill string) string {
	if c, ok := t.lookup[skill]; ok {
		return c
	}
	return OtherCategory
}

// Without returns a taxonomy without the named categories.
func (t *Taxonomy) Without(names ...string) *Taxonomy {
	kept := make([]Category, 0, len(t.categories))
	for _, c := range t.categories {
		if !slices.Contains(names, c.Name) {
			kept = append(kept, c)
		}
	}
	return NewTaxonomy(kept)
}

// Merge appends custom skills to existing categories, dropping duplicates while keeping
// order. Unknown categories are appended at the end.
func (t *Taxonomy) Merge(custom []Category) *Taxonomy {
	merged := t.Categories()
	index := make(map[string]int, len(merged))
	for i, c := range merged {
		index[c.Name] = i
	}

	for _, c := range custom {
		i, ok := index[c.Name]
		if !ok {
			index[c.Name] = len(merged)
			merged = append(merged, Category{Name: c.Name, Skills: dedupe(c.Skills)})
			continue
		}
		merged[i].Skills = dedupe(append(merged[i].Skills, c.Skills...))
	}

	return NewTaxonomy(merged)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// MergeCategories is Merge over plain category lists.
func MergeCategories(base, custom []Category) []Category {
	return NewTaxonomy(base).Merge(custom).Categories()
}
