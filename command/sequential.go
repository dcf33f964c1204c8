package command

import "context"

// Sequential runs its children one after another. The union of all child
// requirements is held for the whole lifetime of the group.
type Sequential struct {
	group
	index int
}

// NewSequential takes ownership of commands and runs them in order.
func NewSequential(commands ...Command) (*Sequential, error) {
	if err := adopt(commands...); err != nil {
		return nil, err
	}
	return &Sequential{group: newGroup("sequential", commands), index: -1}, nil
}

func (s *Sequential) Initialize(ctx context.Context) {
	s.index = 0
	if len(s.commands) > 0 {
		s.commands[0].Initialize(ctx)
	}
}

// Execute runs the current child. When it finishes, it is ended and the next
// child is initialized in the same pass; the next child first executes on the
// following tick.
func (s *Sequential) Execute(ctx context.Context) {
	if s.index < 0 || s.index >= len(s.commands) {
		return
	}
	current := s.commands[s.index]
	current.Execute(ctx)
	if !current.IsFinished() {
		return
	}
	current.End(ctx, false)
	s.index++
	if s.index < len(s.commands) {
		s.commands[s.index].Initialize(ctx)
	}
}

func (s *Sequential) IsFinished() bool {
	return s.index >= len(s.commands)
}

func (s *Sequential) End(ctx context.Context, interrupted bool) {
	if interrupted && s.index >= 0 && s.index < len(s.commands) {
		s.commands[s.index].End(ctx, true)
	}
	s.index = -1
}
