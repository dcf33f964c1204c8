package command

import "context"

// Wrapper delegates every lifecycle call to one owned command. Decorators
// embed it and override only what they change.
type Wrapper struct {
	Base
	inner Command
}

// NewWrapper takes ownership of inner.
func NewWrapper(inner Command) (*Wrapper, error) {
	if err := adopt(inner); err != nil {
		return nil, err
	}
	ret := &Wrapper{inner: inner}
	ret.SetName(inner.Name())
	ret.AddRequirements(inner.Requirements()...)
	return ret, nil
}

// Inner returns the wrapped command.
func (w *Wrapper) Inner() Command { return w.inner }

func (w *Wrapper) Initialize(ctx context.Context) { w.inner.Initialize(ctx) }

func (w *Wrapper) Execute(ctx context.Context) { w.inner.Execute(ctx) }

func (w *Wrapper) IsFinished() bool { return w.inner.IsFinished() }

func (w *Wrapper) End(ctx context.Context, interrupted bool) { w.inner.End(ctx, interrupted) }

func (w *Wrapper) InterruptionBehavior() InterruptionBehavior {
	return w.inner.InterruptionBehavior()
}

func (w *Wrapper) RunsWhenDisabled() bool { return w.inner.RunsWhenDisabled() }

type behaviorOverride struct {
	*Wrapper
	behavior InterruptionBehavior
}

func (b *behaviorOverride) InterruptionBehavior() InterruptionBehavior { return b.behavior }

type disabledOverride struct {
	*Wrapper
	runsWhenDisabled bool
}

func (d *disabledOverride) RunsWhenDisabled() bool { return d.runsWhenDisabled }

// finally runs a callback after the wrapped command ended.
type finally struct {
	*Wrapper
	fn func(ctx context.Context, interrupted bool)
}

func (f *finally) End(ctx context.Context, interrupted bool) {
	f.Wrapper.End(ctx, interrupted)
	if f.fn != nil {
		f.fn(ctx, interrupted)
	}
}

// perpetual keeps running the wrapped command after it reports finished.
type perpetual struct {
	*Wrapper
}

func (p *perpetual) IsFinished() bool { return false }
