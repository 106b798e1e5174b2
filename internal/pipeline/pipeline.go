// Package pipeline runs named processing stages in sequence over a shared state.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Stage is a single named step applied to a state of type S.
type Stage[S any] interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Apply(ctx context.Context, state S) (Step, error)
}

// Step describes the result of executing a stage in terms of items in flight.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a stage.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// statusProvider is implemented by stages that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a stage with the provided name as disabled while keeping it in the list.
func DisableByName[S any](stages []Stage[S], name, reason string) {
	for _, stage := range stages {
		if stage.Name() == name {
			stage.Disable(reason)
		}
	}
}

// Run executes the enabled stages sequentially. The first failing stage stops the run.
func Run[S any](ctx context.Context, logger *zap.Logger, stages []Stage[S], state S) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, stage := range stages {
		if !stage.IsEnabled() {
			logger.Info("stage disabled", zap.String("name", stage.Name()))
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := stage.Apply(ctx, state)
		if err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}

		logger.Info("pipeline stage",
			zap.String("name", stage.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)
	}

	return nil
}

// Describe returns status entries for the provided stages.
func Describe[S any](stages []Stage[S]) []Status {
	statuses := make([]Status, 0, len(stages))
	for _, stage := range stages {
		if reporter, ok := stage.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    stage.Name(),
			Enabled: stage.IsEnabled(),
		})
	}
	return statuses
}
