package pipeline

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type counter struct {
	items []string
	order []string
}

func dropFirst(name string) *FuncStage[*counter] {
	return NewStage(name, func(_ context.Context, c *counter) (Step, error) {
		c.order = append(c.order, name)
		initial := len(c.items)
		if initial > 0 {
			c.items = c.items[1:]
		}
		return Step{Initial: initial, Dropped: initial - len(c.items), Left: len(c.items)}, nil
	})
}

func TestRunSkipsDisabledStages(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	stages := []Stage[*counter]{dropFirst("first"), dropFirst("second"), dropFirst("third")}
	DisableByName(stages, "second", "not needed")

	state := &counter{items: []string{"a", "b", "c"}}
	if err := Run(context.Background(), zap.New(core), stages, state); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := len(state.items); got != 1 {
		t.Fatalf("expected 1 item left, got %d", got)
	}
	if len(state.order) != 2 || state.order[0] != "first" || state.order[1] != "third" {
		t.Fatalf("unexpected stage order: %v", state.order)
	}

	disabled := logs.FilterMessage("stage disabled").All()
	if len(disabled) != 1 || disabled[0].ContextMap()["name"] != "second" {
		t.Fatalf("expected disabled log for second stage, got %v", disabled)
	}

	steps := logs.FilterMessage("pipeline stage").All()
	if len(steps) != 2 {
		t.Fatalf("expected 2 stage logs, got %d", len(steps))
	}
	fields := steps[1].ContextMap()
	if fields["initial"] != int64(2) || fields["dropped"] != int64(1) || fields["left"] != int64(1) {
		t.Fatalf("unexpected step fields: %v", fields)
	}
}

func TestRunStopsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := NewStage("failing", func(context.Context, *counter) (Step, error) {
		return Step{}, boom
	})
	stages := []Stage[*counter]{failing, dropFirst("after")}

	state := &counter{items: []string{"a"}}
	err := Run(context.Background(), nil, stages, state)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if err.Error() != "failing: boom" {
		t.Fatalf("unexpected error text %q", err.Error())
	}
	if len(state.order) != 0 {
		t.Fatalf("stage after failure must not run, got %v", state.order)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := &counter{items: []string{"a"}}
	err := Run(ctx, nil, []Stage[*counter]{dropFirst("first")}, state)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	stages := []Stage[*counter]{
		dropFirst("first").WithDetail("path", "/tmp/x.json").WithDetail("empty", ""),
		dropFirst("second"),
	}
	stages[1].Disable("no classifier configured")

	statuses := Describe(stages)
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if !statuses[0].Enabled || statuses[0].Details["path"] != "/tmp/x.json" {
		t.Fatalf("unexpected first status: %+v", statuses[0])
	}
	if _, ok := statuses[0].Details["empty"]; ok {
		t.Fatalf("empty detail must be skipped")
	}
	if statuses[1].Enabled || statuses[1].Reason != "no classifier configured" {
		t.Fatalf("unexpected second status: %+v", statuses[1])
	}
}
