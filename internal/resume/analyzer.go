// Package resume turns resume documents into analyses: predicted role, skill profile,
// experience mentions and text statistics.
package resume

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/config"
	"github.com/spigell/resume-skills/internal/document"
	"github.com/spigell/resume-skills/internal/logger"
	"github.com/spigell/resume-skills/internal/models"
	"github.com/spigell/resume-skills/internal/pipeline"
	"github.com/spigell/resume-skills/internal/skills"
	"github.com/spigell/resume-skills/internal/textproc"
)

// Analysis is the result of processing one document.
type Analysis struct {
	ID            uuid.UUID         `json:"id"`
	FilePath      string            `json:"file_path"`
	PredictedRole RolePrediction    `json:"predicted_role"`
	Skills        *skills.Profile   `json:"skills"`
	Experience    []ExperienceEntry `json:"experience"`
	TextStats     textproc.Stats    `json:"text_stats"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Options configures an Analyzer.
type Options struct {
	Model    config.Model
	Taxonomy *skills.Taxonomy
	Models   *models.Manager
	// Provider names the classification backend. Empty disables the zero-shot and role stages.
	Provider    string
	ExcludeFile string
	Source      *document.Source
	Logger      *zap.Logger
}

// Analyzer runs the processing stages over documents. It is safe for concurrent use.
type Analyzer struct {
	source      *document.Source
	normalizer  *textproc.Normalizer
	rule        *skills.RuleBased
	zeroShot    *skills.ZeroShot
	reconciler  *skills.Reconciler
	hybrid      *skills.Hybrid
	role        *RoleClassifier
	excludeFile string
	logger      *zap.Logger
}

func NewAnalyzer(opts Options) (*Analyzer, error) {
	if opts.Models == nil {
		return nil, errors.New("models manager is required")
	}
	if err := opts.Model.Validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	segmenter, err := opts.Models.Segmenter()
	if err != nil {
		return nil, err
	}

	taxonomy := opts.Taxonomy
	if taxonomy == nil {
		taxonomy = skills.DefaultTaxonomy()
	}

	source := opts.Source
	if source == nil {
		source = document.NewSource(log)
	}

	normalizer := textproc.NewNormalizer(segmenter)
	matcher := skills.NewMatcher()

	a := &Analyzer{
		source:      source,
		normalizer:  normalizer,
		rule:        skills.NewRuleBased(taxonomy, matcher, log),
		reconciler:  skills.NewReconciler(taxonomy, log),
		excludeFile: opts.ExcludeFile,
		logger:      log,
	}

	if opts.Provider != "" && opts.Provider != config.ProviderNone {
		skillLog := logger.WithCommonFields(log, opts.Provider, opts.Model.SkillModel)
		a.zeroShot = skills.NewZeroShot(skills.ZeroShotConfig{
			Threshold: opts.Model.ConfidenceThreshold,
			BatchSize: opts.Model.BatchSize,
			ChunkSize: opts.Model.ChunkSize,
			Workers:   opts.Model.Workers,
		}, skills.ZeroShotDeps{
			Classifier: opts.Models.Lazy(models.KeySkill, opts.Model.SkillModel),
			Normalizer: normalizer,
			Taxonomy:   taxonomy,
			Matcher:    matcher,
			Logger:     skillLog,
		})

		roleLog := logger.WithCommonFields(log, opts.Provider, opts.Model.RoleModel)
		a.role = NewRoleClassifier(opts.Models.Lazy(models.KeyRole, opts.Model.RoleModel), opts.Model.CandidateRoles, roleLog)
	}

	a.hybrid = skills.NewHybrid(a.rule, a.zeroShot, a.reconciler, log)
	return a, nil
}

// Process extracts the text of the document at path and analyzes it.
func (a *Analyzer) Process(ctx context.Context, path string) (*Analysis, error) {
	a.logger.Info("processing resume", zap.String(logger.FieldDocument, path))

	text, err := a.source.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	analysis, err := a.ProcessText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}
	analysis.FilePath = path
	return analysis, nil
}

// ProcessBytes analyzes an in-memory document. name selects the format.
func (a *Analyzer) ProcessBytes(ctx context.Context, name string, data []byte) (*Analysis, error) {
	text, err := a.source.ExtractBytes(ctx, name, data)
	if err != nil {
		return nil, err
	}

	analysis, err := a.ProcessText(ctx, text)
	if err != nil {
		return nil, err
	}
	analysis.FilePath = name
	return analysis, nil
}

// ProcessText analyzes raw resume text.
func (a *Analyzer) ProcessText(ctx context.Context, text string) (*Analysis, error) {
	cleaned := a.normalizer.Clean(text)
	if err := skills.ValidateText(cleaned); err != nil {
		return nil, err
	}

	st := &state{
		text: cleaned,
		role: RolePrediction{PredictedRole: RoleFallback, Error: "role classification is disabled"},
	}
	if err := pipeline.Run(ctx, a.logger, a.stages(), st); err != nil {
		return nil, err
	}

	return &Analysis{
		ID:            uuid.New(),
		PredictedRole: st.role,
		Skills:        st.profile,
		Experience:    st.experience,
		TextStats:     a.normalizer.Stats(cleaned),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// RuleBased runs vocabulary matching only.
func (a *Analyzer) RuleBased(text string) ([]skills.Finding, error) {
	return a.rule.Detect(a.normalizer.Clean(text))
}

// ZeroShot classifies text against candidates. Nil candidates are derived from the vocabulary.
func (a *Analyzer) ZeroShot(ctx context.Context, text string, candidates []string) ([]skills.Finding, error) {
	if a.zeroShot == nil {
		return nil, &classifierDisabledError{}
	}
	return a.zeroShot.Detect(ctx, a.normalizer.Clean(text), candidates)
}

// Profile runs both detectors and reconciles them without the other stages.
func (a *Analyzer) Profile(ctx context.Context, text string) (*skills.Profile, error) {
	return a.hybrid.Extract(ctx, a.normalizer.Clean(text))
}

// Describe reports the stages Process runs and whether they are enabled.
func (a *Analyzer) Describe() []pipeline.Status {
	return pipeline.Describe(a.stages())
}

type classifierDisabledError struct{}

func (*classifierDisabledError) Error() string { return "no classifier backend is configured" }

// IsClassifierDisabled reports whether err was caused by a missing classifier backend.
func IsClassifierDisabled(err error) bool {
	var target *classifierDisabledError
	return errors.As(err, &target)
}
