package command

import "context"

// Deadline runs all children together; the group ends when the deadline child
// finishes, interrupting whichever other children are still running.
type Deadline struct {
	group
	running  []bool
	finished bool
}

// NewDeadline takes ownership of deadline and others, whose requirements must
// be pairwise disjoint.
func NewDeadline(deadline Command, others ...Command) (*Deadline, error) {
	commands := append([]Command{deadline}, others...)
	if err := ensureDisjoint(commands...); err != nil {
		return nil, err
	}
	if err := adopt(commands...); err != nil {
		return nil, err
	}
	return &Deadline{group: newGroup("deadline", commands), running: make([]bool, len(commands))}, nil
}

// DeadlineCommand returns the child that decides completion.
func (d *Deadline) DeadlineCommand() Command { return d.commands[0] }

func (d *Deadline) Initialize(ctx context.Context) {
	d.finished = false
	for i, cmd := range d.commands {
		cmd.Initialize(ctx)
		d.running[i] = true
	}
}

func (d *Deadline) Execute(ctx context.Context) {
	for i, cmd := range d.commands {
		if !d.running[i] {
			continue
		}
		cmd.Execute(ctx)
		if cmd.IsFinished() {
			cmd.End(ctx, false)
			d.running[i] = false
			if i == 0 {
				d.finished = true
			}
		}
	}
}

func (d *Deadline) IsFinished() bool { return d.finished }

func (d *Deadline) End(ctx context.Context, interrupted bool) {
	for i, cmd := range d.commands {
		if d.running[i] {
			cmd.End(ctx, true)
			d.running[i] = false
		}
	}
}
