package command

import "context"

// Parallel runs all children together and finishes when every child has.
type Parallel struct {
	group
	running []bool
}

// NewParallel takes ownership of commands, whose requirements must be
// pairwise disjoint.
func NewParallel(commands ...Command) (*Parallel, error) {
	if err := ensureDisjoint(commands...); err != nil {
		return nil, err
	}
	if err := adopt(commands...); err != nil {
		return nil, err
	}
	return &Parallel{group: newGroup("parallel", commands), running: make([]bool, len(commands))}, nil
}

func (p *Parallel) Initialize(ctx context.Context) {
	for i, cmd := range p.commands {
		cmd.Initialize(ctx)
		p.running[i] = true
	}
}

func (p *Parallel) Execute(ctx context.Context) {
	for i, cmd := range p.commands {
		if !p.running[i] {
			continue
		}
		cmd.Execute(ctx)
		if cmd.IsFinished() {
			cmd.End(ctx, false)
			p.running[i] = false
		}
	}
}

func (p *Parallel) IsFinished() bool {
	for _, running := range p.running {
		if running {
			return false
		}
	}
	return true
}

func (p *Parallel) End(ctx context.Context, interrupted bool) {
	for i, cmd := range p.commands {
		if p.running[i] && interrupted {
			cmd.End(ctx, true)
		}
		p.running[i] = false
	}
}
