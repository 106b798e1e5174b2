// Package classifier defines the zero-shot classification capability consumed by the
// skill and role detectors.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Result holds labels ordered by descending score with their parallel scores.
type Result struct {
	Sequence string    `json:"sequence,omitempty"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// ZeroShot scores text against candidate labels. With multiLabel set, every label is
// scored independently; otherwise scores are normalized to sum to one.
type ZeroShot interface {
	Classify(ctx context.Context, text string, labels []string, multiLabel bool) (*Result, error)
}

// Func adapts a plain function to the ZeroShot interface.
type Func func(ctx context.Context, text string, labels []string, multiLabel bool) (*Result, error)

func (f Func) Classify(ctx context.Context, text string, labels []string, multiLabel bool) (*Result, error) {
	return f(ctx, text, labels, multiLabel)
}

// Describer is implemented by classifiers that can report where they run.
type Describer interface {
	Provider() string
	Model() string
}

// NewResult builds a Result from per-label scores, ordered by descending score.
// Labels with equal scores keep their input order.
func NewResult(text string, labels []string, scores []float64) (*Result, error) {
	if len(labels) != len(scores) {
		return nil, fmt.Errorf("labels and scores length mismatch: %d != %d", len(labels), len(scores))
	}

	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	res := &Result{
		Sequence: text,
		Labels:   make([]string, 0, len(labels)),
		Scores:   make([]float64, 0, len(scores)),
	}
	for _, i := range idx {
		res.Labels = append(res.Labels, labels[i])
		res.Scores = append(res.Scores, scores[i])
	}
	return res, nil
}

// Top returns the first n label/score pairs of the result.
func (r *Result) Top(n int) map[string]float64 {
	out := make(map[string]float64, n)
	for i := 0; i < n && i < len(r.Labels) && i < len(r.Scores); i++ {
		out[r.Labels[i]] = r.Scores[i]
	}
	return out
}

// Normalize rescales scores so they sum to one. Used for single-label classification.
func Normalize(scores []float64) []float64 {
	total := 0.0
	for _, s := range scores {
		total += s
	}
	out := make([]float64, len(scores))
	if total <= 0 {
		return out
	}
	for i, s := range scores {
		out[i] = s / total
	}
	return out
}

// ModelUnavailableError reports that a classification capability could not be initialized.
// It is fatal for the caller and never retried.
type ModelUnavailableError struct {
	Model string
	Err   error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model %q is unavailable: %v", e.Model, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }

// IsModelUnavailable reports whether err carries a ModelUnavailableError.
func IsModelUnavailable(err error) bool {
	var target *ModelUnavailableError
	return errors.As(err, &target)
}
