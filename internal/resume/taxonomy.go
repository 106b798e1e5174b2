package resume

import (
	"sort"
	"strings"

	"github.com/spigell/resume-skills/internal/config"
	"github.com/spigell/resume-skills/internal/skills"
)

// NewTaxonomy builds the vocabulary from the defaults and the user's customizations.
// Custom categories are merged in name order, then excluded categories are removed.
func NewTaxonomy(cfg config.Skills) *skills.Taxonomy {
	names := make([]string, 0, len(cfg.Custom))
	for name := range cfg.Custom {
		names = append(names, name)
	}
	sort.Strings(names)

	custom := make([]skills.Category, 0, len(names))
	for _, name := range names {
		entries := make([]string, 0, len(cfg.Custom[name]))
		for _, s := range cfg.Custom[name] {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				entries = append(entries, s)
			}
		}
		custom = append(custom, skills.Category{Name: strings.TrimSpace(name), Skills: entries})
	}

	return skills.NewTaxonomy(skills.MergeCategories(skills.DefaultTaxonomy().Categories(), custom)).
		Without(cfg.ExcludeCategories...)
}
