package models

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/logger"
	"github.com/spigell/resume-skills/internal/textproc"
)

func constantClassifier() classifier.ZeroShot {
	return classifier.Func(func(_ context.Context, text string, labels []string, _ bool) (*classifier.Result, error) {
		scores := make([]float64, len(labels))
		for i := range scores {
			scores[i] = 0.5
		}
		return classifier.NewResult(text, labels, scores)
	})
}

func TestClassifierLoadsOnceUnderConcurrency(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	m := NewManager(func(context.Context, string) (classifier.ZeroShot, error) {
		loads.Add(1)
		return constantClassifier(), nil
	}, nil, nil)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Classifier(context.Background(), KeySkill, "nli")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, []string{KeySkill}, m.Info().CachedModels)
}

func TestFailedLoadStaysFailed(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	m := NewManager(func(context.Context, string) (classifier.ZeroShot, error) {
		loads.Add(1)
		return nil, errors.New("artifact missing")
	}, nil, nil)

	for range 3 {
		_, err := m.Classifier(context.Background(), KeyRole, "bart")
		require.Error(t, err)
		assert.True(t, classifier.IsModelUnavailable(err))
	}
	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, []string{KeyRole}, m.Info().FailedModels)
}

func TestLazyClassifierDefersLoading(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	m := NewManager(func(context.Context, string) (classifier.ZeroShot, error) {
		loads.Add(1)
		return constantClassifier(), nil
	}, nil, nil)

	lazy := m.Lazy(KeySkill, "nli")
	assert.Equal(t, int32(0), loads.Load())

	res, err := lazy.Classify(context.Background(), "text", []string{"a"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Labels)
	assert.Equal(t, int32(1), loads.Load())
}

func TestMissingBackendIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := NewManager(nil, nil, nil).Lazy(KeySkill, "nli").Classify(context.Background(), "text", []string{"a"}, true)
	assert.True(t, classifier.IsModelUnavailable(err))
}

func TestSegmenterLoadedOnce(t *testing.T) {
	t.Parallel()

	var loads atomic.Int32
	m := NewManager(nil, func() (textproc.Segmenter, error) {
		loads.Add(1)
		return textproc.SegmenterFunc(func(s string) []string { return []string{s} }), nil
	}, nil)

	for range 3 {
		seg, err := m.Segmenter()
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, seg.Sentences("x"))
	}
	assert.Equal(t, int32(1), loads.Load())
	assert.True(t, m.Info().SegmenterLoaded)
}

func TestSegmenterFailure(t *testing.T) {
	t.Parallel()

	m := NewManager(nil, func() (textproc.Segmenter, error) { return nil, errors.New("no data") }, nil)
	_, err := m.Segmenter()
	assert.True(t, classifier.IsModelUnavailable(err))
}

type servedClassifier struct {
	classifier.ZeroShot
}

func (servedClassifier) Provider() string { return "gemini" }

func (servedClassifier) Model() string { return "gemini-2.5-flash" }

func TestLoadedClassifierLogsServedModel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	m := NewManager(func(context.Context, string) (classifier.ZeroShot, error) {
		return servedClassifier{ZeroShot: constantClassifier()}, nil
	}, nil, zap.New(core))

	_, err := m.Classifier(context.Background(), KeySkill, "org/nli-model")
	require.NoError(t, err)

	entries := logs.FilterMessage("loaded classifier").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "gemini", fields[logger.FieldProvider])
	assert.Equal(t, "gemini-2.5-flash", fields[logger.FieldModel])
	assert.Equal(t, "org/nli-model", fields["requested_model"])
	assert.Equal(t, KeySkill, fields["key"])
}
