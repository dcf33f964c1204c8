package command

import "context"

// Race runs all children together and finishes as soon as any child does.
// Children that finished are ended normally, the rest are interrupted.
type Race struct {
	group
	done     []bool
	finished bool
}

// NewRace takes ownership of commands, whose requirements must be pairwise
// disjoint.
func NewRace(commands ...Command) (*Race, error) {
	if err := ensureDisjoint(commands...); err != nil {
		return nil, err
	}
	if err := adopt(commands...); err != nil {
		return nil, err
	}
	return &Race{group: newGroup("race", commands), done: make([]bool, len(commands))}, nil
}

func (r *Race) Initialize(ctx context.Context) {
	r.finished = false
	for i, cmd := range r.commands {
		r.done[i] = false
		cmd.Initialize(ctx)
	}
}

func (r *Race) Execute(ctx context.Context) {
	for i, cmd := range r.commands {
		cmd.Execute(ctx)
		if cmd.IsFinished() {
			r.done[i] = true
			r.finished = true
		}
	}
}

func (r *Race) IsFinished() bool { return r.finished }

func (r *Race) End(ctx context.Context, interrupted bool) {
	for i, cmd := range r.commands {
		cmd.End(ctx, !r.done[i])
	}
}
