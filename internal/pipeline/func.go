package pipeline

import "context"

// ApplyFunc is the body of a FuncStage.
type ApplyFunc[S any] func(ctx context.Context, state S) (Step, error)

// FuncStage adapts a function to Stage.
type FuncStage[S any] struct {
	name    string
	apply   ApplyFunc[S]
	details map[string]string

	disabled bool
	reason   string
}

func NewStage[S any](name string, apply func(ctx context.Context, state S) (Step, error)) *FuncStage[S] {
	return &FuncStage[S]{name: name, apply: apply}
}

// WithDetail records a key reported by Status.
func (s *FuncStage[S]) WithDetail(key, value string) *FuncStage[S] {
	if value == "" {
		return s
	}
	if s.details == nil {
		s.details = make(map[string]string)
	}
	s.details[key] = value
	return s
}

func (s *FuncStage[S]) Name() string { return s.name }

func (s *FuncStage[S]) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *FuncStage[S]) IsEnabled() bool { return !s.disabled }

func (s *FuncStage[S]) Apply(ctx context.Context, state S) (Step, error) {
	return s.apply(ctx, state)
}

func (s *FuncStage[S]) Status() Status {
	return Status{Name: s.name, Enabled: !s.disabled, Reason: s.reason, Details: s.details}
}
