package skills

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/textproc"
)

const (
	minChunkTokens     = 10
	zeroShotPreviewLen = 100
)

// ZeroShotConfig tunes the classification scan.
type ZeroShotConfig struct {
	Threshold float64
	BatchSize int
	ChunkSize int
	// Workers above one classify (batch, chunk) units concurrently.
	Workers int
}

// ZeroShotDeps groups the collaborators of the zero-shot detector.
type ZeroShotDeps struct {
	Classifier classifier.ZeroShot
	Normalizer *textproc.Normalizer
	Taxonomy   *Taxonomy
	Matcher    *Matcher
	Logger     *zap.Logger
}

// ZeroShot scores candidate skills against document chunks with a classifier.
type ZeroShot struct {
	config ZeroShotConfig
	deps   ZeroShotDeps
}

func NewZeroShot(cfg ZeroShotConfig, deps ZeroShotDeps) *ZeroShot {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if deps.Matcher == nil {
		deps.Matcher = NewMatcher()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ZeroShot{config: cfg, deps: deps}
}

type unit struct {
	batch  int
	labels []string
	chunk  textproc.Chunk
}

// Detect classifies every eligible chunk against every batch of candidates and keeps the
// best score per skill, sorted by descending confidence.
//
// A nil candidate list is derived from the vocabulary; an empty one returns no findings
// without calling the classifier. A failed unit is logged and contributes nothing, while
// an unavailable model or a cancelled context aborts the scan.
func (d *ZeroShot) Detect(ctx context.Context, text string, candidates []string) ([]Finding, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	if candidates == nil {
		candidates = d.deps.Matcher.Candidates(text, d.deps.Taxonomy.Skills())
	}
	if len(candidates) == 0 {
		d.deps.Logger.Info("no candidate skills for zero-shot verification")
		return []Finding{}, nil
	}

	d.deps.Logger.Info("zero-shot processing candidates", zap.Int("candidates", len(candidates)))

	units := d.plan(text, candidates)
	results, err := d.classify(ctx, units)
	if err != nil {
		return nil, err
	}

	findings := reduceBest(results)
	d.deps.Logger.Info("zero-shot extraction completed", zap.Int("skills_found", len(findings)))

	return findings, nil
}

func (d *ZeroShot) plan(text string, candidates []string) []unit {
	var eligible []textproc.Chunk
	for _, c := range d.deps.Normalizer.Chunk(text, d.config.ChunkSize) {
		if len(strings.Fields(c.Text)) < minChunkTokens {
			continue
		}
		eligible = append(eligible, c)
	}

	var units []unit
	for start := 0; start < len(candidates); start += d.config.BatchSize {
		end := min(start+d.config.BatchSize, len(candidates))
		for _, c := range eligible {
			units = append(units, unit{batch: start / d.config.BatchSize, labels: candidates[start:end], chunk: c})
		}
	}
	return units
}

// classify returns the findings of each unit at the unit's index.
func (d *ZeroShot) classify(ctx context.Context, units []unit) ([][]Finding, error) {
	results := make([][]Finding, len(units))

	if d.config.Workers <= 1 {
		for i, u := range units {
			found, err := d.classifyUnit(ctx, u)
			if err != nil {
				return nil, err
			}
			results[i] = found
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.config.Workers)
	for i, u := range units {
		g.Go(func() error {
			found, err := d.classifyUnit(gctx, u)
			if err != nil {
				return err
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (d *ZeroShot) classifyUnit(ctx context.Context, u unit) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := d.deps.Classifier.Classify(ctx, u.chunk.Text, u.labels, true)
	if err != nil {
		if classifier.IsModelUnavailable(err) {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}

		cerr := &ClassificationError{Batch: u.batch, Chunk: u.chunk.Index, Err: err}
		d.deps.Logger.Warn("zero-shot classification failed", zap.Error(cerr))
		return nil, nil
	}
	if len(res.Labels) != len(res.Scores) {
		cerr := &ClassificationError{Batch: u.batch, Chunk: u.chunk.Index,
			Err: fmt.Errorf("labels and scores length mismatch: %d != %d", len(res.Labels), len(res.Scores))}
		d.deps.Logger.Warn("zero-shot classification failed", zap.Error(cerr))
		return nil, nil
	}

	var found []Finding
	for i, label := range res.Labels {
		score := res.Scores[i]
		if score <= d.config.Threshold {
			continue
		}
		idx := u.chunk.Index
		found = append(found, Finding{
			Skill:      label,
			Confidence: score,
			Category:   d.deps.Taxonomy.CategoryOf(label),
			Method:     MethodZeroShot,
			Context:    textproc.Preview(u.chunk.Text, zeroShotPreviewLen),
			ChunkIndex: &idx,
		})
	}

	return found, nil
}

// reduceBest keeps the highest score per skill. Ties keep the earliest unit.
func reduceBest(results [][]Finding) []Finding {
	index := make(map[string]int)
	best := make([]Finding, 0)

	for _, found := range results {
		for _, f := range found {
			i, ok := index[f.Skill]
			if !ok {
				index[f.Skill] = len(best)
				best = append(best, f)
				continue
			}
			if f.Confidence > best[i].Confidence {
				best[i] = f
			}
		}
	}

	sort.SliceStable(best, func(a, b int) bool { return best[a].Confidence > best[b].Confidence })
	return best
}
