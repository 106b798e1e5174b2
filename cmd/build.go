package cmd

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/classifier/gemini"
	"github.com/spigell/resume-skills/internal/classifier/hfapi"
	"github.com/spigell/resume-skills/internal/config"
	"github.com/spigell/resume-skills/internal/logger"
	"github.com/spigell/resume-skills/internal/models"
	"github.com/spigell/resume-skills/internal/resume"
	"github.com/spigell/resume-skills/internal/secrets"
)

const defaultGeminiModel = "gemini-2.5-flash"

var defaultTokenEnv = map[string]string{
	config.ProviderHuggingFace: "HF_TOKEN",
	config.ProviderGemini:      "GEMINI_API_KEY",
}

// buildAnalyzer wires the analyzer and the model manager it loads classifiers from.
func buildAnalyzer(cfg *config.Config, log *zap.Logger) (*resume.Analyzer, *models.Manager, error) {
	loader, err := newClassifierLoader(cfg.Classifier, log)
	if err != nil {
		return nil, nil, err
	}

	manager := models.NewManager(loader, nil, log)

	analyzer, err := resume.NewAnalyzer(resume.Options{
		Model:       cfg.Model,
		Taxonomy:    resume.NewTaxonomy(cfg.Skills),
		Models:      manager,
		Provider:    cfg.Classifier.Provider,
		ExcludeFile: cfg.ExcludeFile,
		Logger:      log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating analyzer: %w", err)
	}
	return analyzer, manager, nil
}

// newClassifierLoader returns nil when no provider is configured.
func newClassifierLoader(cfg config.Classifier, log *zap.Logger) (models.ClassifierLoader, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" || provider == config.ProviderNone {
		return nil, nil
	}

	token, err := resolveToken(cfg, provider)
	if err != nil {
		return nil, err
	}

	limiter := newLimiter(cfg.RequestsPerSecond)

	switch provider {
	case config.ProviderHuggingFace:
		return func(_ context.Context, model string) (classifier.ZeroShot, error) {
			client := hfapi.New(logger.WithCommonFields(log, provider, model), token, model, limiter)
			if cfg.BaseURL != "" {
				client.BaseURL = cfg.BaseURL
			}
			return client, nil
		}, nil
	case config.ProviderGemini:
		return func(ctx context.Context, model string) (classifier.ZeroShot, error) {
			if strings.Contains(model, "/") {
				log.Warn("model looks like a hugging face repository; using the default gemini model",
					zap.String("configured_model", model),
					zap.String("model", defaultGeminiModel),
				)
				model = defaultGeminiModel
			}

			genLogger := logger.WithCommonFields(log, provider, model).With(
				zap.Int("ai_retry_attempts", cfg.MaxRetries),
			)
			generator, err := gemini.NewGenerator(ctx, token, model, cfg.MaxRetries, genLogger)
			if err != nil {
				return nil, err
			}
			return gemini.NewClassifier(generator, limiter, genLogger, cfg.MaxLogLength), nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", cfg.Provider)
	}
}

func resolveToken(cfg config.Classifier, provider string) (string, error) {
	env := strings.TrimSpace(cfg.TokenEnv)
	if env == "" {
		env = defaultTokenEnv[provider]
	}

	token, err := secrets.Load(secrets.Source{
		Name:  provider + " token",
		Value: cfg.Token,
		File:  cfg.TokenFile,
		Env:   env,
	})
	if err != nil {
		return "", fmt.Errorf("%w (set classifier.token-file, RESUME_SKILLS_TOKEN_FILE or %s)", err, env)
	}
	return token, nil
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), int(math.Max(1, math.Ceil(rps))))
}
