// Package gemini implements zero-shot classification on top of the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/utils"
)

const (
	providerName        = "gemini"
	defaultMaxLogLength = 200
	multiLabelInstruct  = "Labels are independent: several labels may score high at the same time."
	singleLabelInstruct = "Exactly one label is correct: the scores should sum to 1.0."
	placeholderMode     = "{{MODE}}"
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Classifier asks Gemini for per-label entailment scores.
type Classifier struct {
	generator contentGenerator
	limiter   *rate.Limiter
	logger    *zap.Logger
	maxLogLen int
}

// NewClassifier wraps generator. A nil limiter disables rate limiting.
func NewClassifier(generator contentGenerator, limiter *rate.Limiter, logger *zap.Logger, maxLogLength int) *Classifier {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		generator: generator,
		limiter:   limiter,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (c *Classifier) Provider() string { return providerName }

func (c *Classifier) Model() string { return c.generator.Model() }

func (c *Classifier) Classify(ctx context.Context, text string, labels []string, multiLabel bool) (*classifier.Result, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("at least one label is required")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	system := buildSystemPrompt(multiLabel)
	message := buildMessage(text, labels)

	c.logger.Debug("gemini classify request",
		zap.Int("labels", len(labels)),
		zap.Int("message_length", utf8.RuneCountInString(message)),
		zap.String("message_preview", utils.TruncateForLog(message, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, system, message)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini classify response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, c.maxLogLen)),
	)

	scores, err := parseScores(raw, labels)
	if err != nil {
		return nil, err
	}

	return classifier.NewResult(text, labels, rescale(scores, multiLabel))
}

// rescale maps raw model scores to [0, 1]. Single-label scores are normalized to sum to
// one. Multi-label responses with any score above 1 are read as percentages.
func rescale(scores []float64, multiLabel bool) []float64 {
	if !multiLabel {
		scores = classifier.Normalize(scores)
	} else if slices.Max(scores) > 1 {
		for i := range scores {
			scores[i] /= 100
		}
	}

	for i, s := range scores {
		scores[i] = min(s, 1)
	}
	return scores
}

func buildSystemPrompt(multiLabel bool) string {
	mode := singleLabelInstruct
	if multiLabel {
		mode = multiLabelInstruct
	}
	return strings.ReplaceAll(promptTemplate, placeholderMode, mode)
}

func buildMessage(text string, labels []string) string {
	var b strings.Builder
	b.WriteString("Passage:\n")
	b.WriteString(text)
	b.WriteString("\n\nLabels:\n")
	for _, l := range labels {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

type scoresResponse struct {
	Scores map[string]float64 `mapstructure:"scores"`
}

// parseScores returns one non-negative raw score per label in label order. Missing labels
// score zero.
func parseScores(raw string, labels []string) ([]float64, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	if _, ok := data["scores"]; !ok {
		data = map[string]any{"scores": data}
	}

	var resp scoresResponse
	if err := mapstructure.WeakDecode(data, &resp); err != nil {
		return nil, fmt.Errorf("decode gemini scores: %w", err)
	}

	lookup := make(map[string]float64, len(resp.Scores))
	for k, v := range resp.Scores {
		lookup[strings.ToLower(strings.TrimSpace(k))] = v
	}

	scores := make([]float64, len(labels))
	for i, l := range labels {
		s, ok := resp.Scores[l]
		if !ok {
			s = lookup[strings.ToLower(strings.TrimSpace(l))]
		}
		scores[i] = max(s, 0)
	}
	return scores, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
