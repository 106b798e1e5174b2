// Package models loads classification and segmentation capabilities lazily, at most once
// per process, and shares them read-only afterwards.
package models

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/logger"
	"github.com/spigell/resume-skills/internal/textproc"
)

const (
	KeySkill = "skill_classifier"
	KeyRole  = "role_classifier"
)

// ClassifierLoader creates a classifier for model.
type ClassifierLoader func(ctx context.Context, model string) (classifier.ZeroShot, error)

// SegmenterLoader creates the sentence segmenter.
type SegmenterLoader func() (textproc.Segmenter, error)

type classifierSlot struct {
	once  sync.Once
	model string
	value classifier.ZeroShot
	err   error
}

// Manager caches one classifier per key and one segmenter. A failed load is cached as
// well and reported on every use.
type Manager struct {
	loadClassifier ClassifierLoader
	loadSegmenter  SegmenterLoader
	logger         *zap.Logger

	mu    sync.Mutex
	slots map[string]*classifierSlot

	segOnce   sync.Once
	segmenter textproc.Segmenter
	segErr    error
}

func NewManager(loadClassifier ClassifierLoader, loadSegmenter SegmenterLoader, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loadSegmenter == nil {
		loadSegmenter = func() (textproc.Segmenter, error) { return textproc.NewPunktSegmenter() }
	}
	return &Manager{
		loadClassifier: loadClassifier,
		loadSegmenter:  loadSegmenter,
		logger:         logger,
		slots:          make(map[string]*classifierSlot),
	}
}

func (m *Manager) slot(key, model string) *classifierSlot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[key]
	if !ok {
		s = &classifierSlot{model: model}
		m.slots[key] = s
	}
	return s
}

// Classifier returns the classifier cached under key, loading model on first use.
// Later calls return the first result regardless of model.
func (m *Manager) Classifier(ctx context.Context, key, model string) (classifier.ZeroShot, error) {
	s := m.slot(key, model)
	s.once.Do(func() {
		var (
			c   classifier.ZeroShot
			err error
		)
		if m.loadClassifier == nil {
			err = fmt.Errorf("no classifier backend configured")
		} else {
			c, err = m.loadClassifier(ctx, s.model)
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			s.err = &classifier.ModelUnavailableError{Model: s.model, Err: err}
			m.logger.Error("loading classifier failed", zap.String("key", key), zap.String("model", s.model), zap.Error(err))
			return
		}
		s.value = c
		logger.WithClassifier(m.logger, c).Info("loaded classifier",
			zap.String("key", key),
			zap.String("requested_model", s.model),
		)
	})
	return s.value, s.err
}

// Lazy returns a classifier that loads key on its first Classify call.
func (m *Manager) Lazy(key, model string) classifier.ZeroShot {
	return &lazyClassifier{manager: m, key: key, model: model}
}

type lazyClassifier struct {
	manager *Manager
	key     string
	model   string
}

func (l *lazyClassifier) Classify(ctx context.Context, text string, labels []string, multiLabel bool) (*classifier.Result, error) {
	c, err := l.manager.Classifier(ctx, l.key, l.model)
	if err != nil {
		return nil, err
	}
	return c.Classify(ctx, text, labels, multiLabel)
}

// Segmenter returns the shared sentence segmenter. A load failure is returned as a
// ModelUnavailableError.
func (m *Manager) Segmenter() (textproc.Segmenter, error) {
	m.segOnce.Do(func() {
		seg, err := m.loadSegmenter()

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			m.segErr = &classifier.ModelUnavailableError{Model: "sentence-segmenter", Err: err}
			m.logger.Error("loading sentence segmenter failed", zap.Error(err))
			return
		}
		m.segmenter = seg
	})
	return m.segmenter, m.segErr
}

// Info describes the loaded capabilities.
type Info struct {
	CachedModels    []string `json:"cached_models"`
	FailedModels    []string `json:"failed_models"`
	SegmenterLoaded bool     `json:"segmenter_loaded"`
}

func (m *Manager) Info() Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	info := Info{CachedModels: []string{}, FailedModels: []string{}, SegmenterLoaded: m.segmenter != nil}
	for key, s := range m.slots {
		switch {
		case s.value != nil:
			info.CachedModels = append(info.CachedModels, key)
		case s.err != nil:
			info.FailedModels = append(info.FailedModels, key)
		}
	}
	sort.Strings(info.CachedModels)
	sort.Strings(info.FailedModels)
	return info
}
