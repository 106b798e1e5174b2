package skills

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// AdmissionThreshold is the bar a zero-shot finding must exceed to enter a profile
// without a matching vocabulary finding. It is independent of the detector threshold.
const AdmissionThreshold = 0.85

// Reconciler merges rule-based and zero-shot findings into a profile.
type Reconciler struct {
	taxonomy *Taxonomy
	logger   *zap.Logger
}

func NewReconciler(taxonomy *Taxonomy, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{taxonomy: taxonomy, logger: logger}
}

// Reconcile keeps every rule-based finding. A zero-shot finding for a new skill is
// admitted above AdmissionThreshold; one for a known skill only raises its confidence
// when strictly higher and marks it as verified by zero-shot.
func (r *Reconciler) Reconcile(rule, zsl []Finding) *Profile {
	order := make([]string, 0, len(rule)+len(zsl))
	merged := make(map[string]*Finding, len(rule)+len(zsl))

	put := func(f Finding) {
		f.Category = r.taxonomy.CategoryOf(f.Skill)
		if _, ok := merged[f.Skill]; !ok {
			order = append(order, f.Skill)
		}
		merged[f.Skill] = &f
	}

	for _, f := range rule {
		put(f)
	}

	for _, f := range zsl {
		existing, ok := merged[f.Skill]
		if !ok {
			if f.Confidence > AdmissionThreshold {
				put(f)
			}
			continue
		}
		if f.Confidence > existing.Confidence {
			existing.Confidence = f.Confidence
			existing.Method = MethodHybrid
			existing.VerifiedBy = MethodZeroShot
		}
	}

	findings := make([]Finding, 0, len(order))
	for _, skill := range order {
		findings = append(findings, *merged[skill])
	}

	r.logger.Info("hybrid extraction completed", zap.Int("skills_found", len(findings)))
	return NewProfile(findings, len(rule), len(zsl))
}

// Hybrid runs both detectors over the same text and reconciles their findings.
// The zero-shot detector is seeded with the rule-based skill names.
type Hybrid struct {
	rule       *RuleBased
	zeroShot   *ZeroShot
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewHybrid wires the detectors. A nil zeroShot yields rule-based profiles only.
func NewHybrid(rule *RuleBased, zeroShot *ZeroShot, reconciler *Reconciler, logger *zap.Logger) *Hybrid {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hybrid{rule: rule, zeroShot: zeroShot, reconciler: reconciler, logger: logger}
}

func (h *Hybrid) Extract(ctx context.Context, text string) (*Profile, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	h.logger.Info("starting hybrid skill extraction")

	rule, err := h.rule.Detect(text)
	if err != nil {
		return nil, fmt.Errorf("rule-based detection: %w", err)
	}

	var zsl []Finding
	if h.zeroShot != nil {
		zsl, err = h.zeroShot.Detect(ctx, text, Names(rule))
		if err != nil {
			return nil, fmt.Errorf("zero-shot detection: %w", err)
		}
	}

	return h.reconciler.Reconcile(rule, zsl), nil
}

// Names returns the skill names of findings. The result is never nil.
func Names(findings []Finding) []string {
	names := make([]string, 0, len(findings))
	for _, f := range findings {
		names = append(names, f.Skill)
	}
	return names
}
