// Package server exposes resume analysis over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/models"
	"github.com/spigell/resume-skills/internal/pipeline"
	"github.com/spigell/resume-skills/internal/resume"
	"github.com/spigell/resume-skills/internal/skills"
	"github.com/spigell/resume-skills/internal/store"
)

const shutdownTimeout = 30 * time.Second

// Analyzer is the processing surface the server needs.
type Analyzer interface {
	ProcessText(ctx context.Context, text string) (*resume.Analysis, error)
	ProcessBytes(ctx context.Context, name string, data []byte) (*resume.Analysis, error)
	RuleBased(text string) ([]skills.Finding, error)
	ZeroShot(ctx context.Context, text string, candidates []string) ([]skills.Finding, error)
	Profile(ctx context.Context, text string) (*skills.Profile, error)
	Describe() []pipeline.Status
}

// Config holds server configuration.
type Config struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxUploadBytes int64
}

// Server serves the analysis API.
type Server struct {
	httpServer *http.Server
	analyzer   Analyzer
	store      store.Store
	models     *models.Manager
	maxUpload  int64
	logger     *zap.Logger
}

// New builds a server. The store and the models manager are optional.
func New(cfg Config, analyzer Analyzer, st store.Store, manager *models.Manager, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}

	s := &Server{
		analyzer:  analyzer,
		store:     st,
		models:    manager,
		maxUpload: cfg.MaxUploadBytes,
		logger:    logger,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/process", s.handleProcess)
	mux.HandleFunc("POST /v1/skills/rule-based", s.handleRuleBased)
	mux.HandleFunc("POST /v1/skills/zero-shot", s.handleZeroShot)
	mux.HandleFunc("POST /v1/skills/profile", s.handleProfile)
	mux.HandleFunc("GET /v1/schema", s.handleSchema)
	mux.HandleFunc("GET /v1/analyses", s.handleListAnalyses)
	mux.HandleFunc("GET /v1/analyses/{id}", s.handleGetAnalysis)
	mux.HandleFunc("GET /health", s.handleHealth)
	return s.withLogging(mux)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
