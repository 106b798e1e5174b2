package skills

import (
	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/textproc"
)

const ruleContextSize = 50

// RuleBased finds vocabulary skills with patterns only. It needs no model.
type RuleBased struct {
	taxonomy *Taxonomy
	matcher  *Matcher
	logger   *zap.Logger
}

func NewRuleBased(taxonomy *Taxonomy, matcher *Matcher, logger *zap.Logger) *RuleBased {
	if matcher == nil {
		matcher = NewMatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleBased{taxonomy: taxonomy, matcher: matcher, logger: logger}
}

// Detect emits one finding per vocabulary skill present in text, in vocabulary order.
// Context is taken around the first match; positions hold every match.
func (d *RuleBased) Detect(text string) ([]Finding, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	lowered := textproc.LowerPreserving(text)
	seen := make(map[string]struct{})
	findings := make([]Finding, 0)

	for _, skill := range d.taxonomy.Skills() {
		if _, ok := seen[skill]; ok {
			continue
		}

		spans := d.matcher.FindAll(lowered, skill)
		if len(spans) == 0 {
			continue
		}
		seen[skill] = struct{}{}

		findings = append(findings, Finding{
			Skill:      skill,
			Confidence: RuleBasedConfidence,
			Category:   d.taxonomy.CategoryOf(skill),
			Method:     MethodRuleBased,
			Context:    textproc.ContextAround(text, spans[0][0], spans[0][1], ruleContextSize),
			Matches:    len(spans),
			Positions:  spans,
		})
	}

	d.logger.Info("rule-based extraction completed", zap.Int("skills_found", len(findings)))
	return findings, nil
}
