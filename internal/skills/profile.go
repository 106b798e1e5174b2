package skills

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
)

// CategorySummary aggregates the findings of one category.
type CategorySummary struct {
	Count         int      `json:"count"`
	Skills        []string `json:"skills"`
	AvgConfidence float64  `json:"avg_confidence"`
	TopSkill      string   `json:"top_skill"`
}

// Summary maps category names to their aggregates. It serializes as a flat object
// with an extra total_skills key.
type Summary struct {
	Categories  map[string]CategorySummary
	TotalSkills int
}

const totalSkillsKey = "total_skills"

func (s Summary) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Categories)+1)
	for name, c := range s.Categories {
		out[name] = c
	}
	out[totalSkillsKey] = s.TotalSkills
	return json.Marshal(out)
}

func (s *Summary) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Categories = make(map[string]CategorySummary, len(raw))
	for name, value := range raw {
		if name == totalSkillsKey {
			if err := json.Unmarshal(value, &s.TotalSkills); err != nil {
				return fmt.Errorf("decode %s: %w", totalSkillsKey, err)
			}
			continue
		}
		var c CategorySummary
		if err := json.Unmarshal(value, &c); err != nil {
			return fmt.Errorf("decode summary for %q: %w", name, err)
		}
		s.Categories[name] = c
	}
	return nil
}

// ExtractionStats records input sizes before the merge and the final unique count.
type ExtractionStats struct {
	TotalFound     int  `json:"total_found"`
	RuleBasedCount int  `json:"rule_based_count"`
	ZSLCount       int  `json:"zsl_count"`
	HybridMethod   bool `json:"hybrid_method"`
}

// Profile is the reconciled skill profile of one document.
type Profile struct {
	DetailedSkills    []Finding            `json:"detailed_skills"`
	CategorizedSkills map[string][]Finding `json:"categorized_skills"`
	SkillSummary      Summary              `json:"skill_summary"`
	ExtractionStats   ExtractionStats      `json:"extraction_stats"`
	SkillNames        []string             `json:"skill_names"`
}

// NewProfile groups findings by category and computes the summary.
// Findings are kept in the given order.
func NewProfile(findings []Finding, ruleCount, zslCount int) *Profile {
	p := &Profile{
		DetailedSkills:    slices.Clone(findings),
		CategorizedSkills: make(map[string][]Finding),
		SkillNames:        make([]string, 0, len(findings)),
		ExtractionStats: ExtractionStats{
			TotalFound:     len(findings),
			RuleBasedCount: ruleCount,
			ZSLCount:       zslCount,
			HybridMethod:   true,
		},
	}
	if p.DetailedSkills == nil {
		p.DetailedSkills = []Finding{}
	}

	for _, f := range p.DetailedSkills {
		category := f.Category
		if category == "" {
			category = OtherCategory
		}
		p.CategorizedSkills[category] = append(p.CategorizedSkills[category], f)
		p.SkillNames = append(p.SkillNames, f.Skill)
	}

	p.SkillSummary = summarize(p.CategorizedSkills)
	return p
}

func summarize(categorized map[string][]Finding) Summary {
	s := Summary{Categories: make(map[string]CategorySummary, len(categorized))}

	for name, findings := range categorized {
		if len(findings) == 0 {
			continue
		}

		var (
			total float64
			top   = findings[0]
			names = make([]string, 0, len(findings))
		)
		for _, f := range findings {
			total += f.Confidence
			names = append(names, f.Skill)
			if f.Confidence > top.Confidence {
				top = f
			}
		}

		s.Categories[name] = CategorySummary{
			Count:         len(findings),
			Skills:        names,
			AvgConfidence: round3(total / float64(len(findings))),
			TopSkill:      top.Skill,
		}
		s.TotalSkills += len(findings)
	}

	return s
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// CategoryNames returns the categories of the profile in sorted order.
func (p *Profile) CategoryNames() []string {
	names := make([]string, 0, len(p.CategorizedSkills))
	for name := range p.CategorizedSkills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Without returns a profile without the named skills. Input counts are kept.
func (p *Profile) Without(skills []string) *Profile {
	if len(skills) == 0 {
		return p
	}

	kept := make([]Finding, 0, len(p.DetailedSkills))
	for _, f := range p.DetailedSkills {
		if !slices.Contains(skills, f.Skill) {
			kept = append(kept, f)
		}
	}
	return NewProfile(kept, p.ExtractionStats.RuleBasedCount, p.ExtractionStats.ZSLCount)
}
