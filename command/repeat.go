package command

import "context"

// Repeat restarts its child every time it finishes and never finishes on its
// own. The restart happens in the same pass that observed the child finish:
// End(false) is followed immediately by Initialize, and the restarted child
// next executes on the following tick.
type Repeat struct {
	Base
	child Command
}

// NewRepeat takes ownership of child.
func NewRepeat(child Command) (*Repeat, error) {
	if err := adopt(child); err != nil {
		return nil, err
	}
	ret := &Repeat{child: child}
	ret.SetName("repeat(" + child.Name() + ")")
	ret.AddRequirements(child.Requirements()...)
	return ret, nil
}

func (r *Repeat) Initialize(ctx context.Context) {
	r.child.Initialize(ctx)
}

func (r *Repeat) Execute(ctx context.Context) {
	r.child.Execute(ctx)
	if r.child.IsFinished() {
		r.child.End(ctx, false)
		r.child.Initialize(ctx)
	}
}

func (r *Repeat) IsFinished() bool { return false }

func (r *Repeat) End(ctx context.Context, interrupted bool) {
	r.child.End(ctx, interrupted)
}

func (r *Repeat) InterruptionBehavior() InterruptionBehavior {
	return r.child.InterruptionBehavior()
}

func (r *Repeat) RunsWhenDisabled() bool { return r.child.RunsWhenDisabled() }
