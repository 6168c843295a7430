package engine

import (
	"fmt"

	"sonoviz/internal/modes"
)

// Stage owns at most one live instance and swaps it on mode changes. A
// switch destroys the old instance before creating the new one, so labels,
// help and parameters always belong to the same mode.
type Stage struct {
	container Container
	opts      Options
	current   *Instance
}

// NewStage returns a stage that creates instances with opts.
func NewStage(container Container, opts Options) *Stage {
	return &Stage{container: container, opts: opts}
}

// Select destroys the current instance and mounts mode.
func (s *Stage) Select(mode modes.Mode) (*Instance, error) {
	if s.current != nil {
		s.current.Destroy()
		s.current = nil
	}
	opts := s.opts
	opts.Mode = mode
	inst, err := Create(s.container, opts)
	if err != nil {
		return nil, fmt.Errorf("selecting %s: %w", mode, err)
	}
	s.current = inst
	return inst, nil
}

// Current returns the live instance, or nil.
func (s *Stage) Current() *Instance {
	return s.current
}

// Close destroys the live instance.
func (s *Stage) Close() {
	if s.current != nil {
		s.current.Destroy()
		s.current = nil
	}
}
