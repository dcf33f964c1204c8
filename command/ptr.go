package command

import (
	"context"
	"time"
)

// Ptr is a move-only handle exclusively owning one command. Every decorator
// consumes the receiver, which is left empty, and returns a new handle owning
// the decorated command. Errors are sticky: once a handle carries an error,
// every handle derived from it carries the same error, reported by Err or
// Unwrap.
type Ptr struct {
	cmd Command
	err error
}

// Own transfers cmd into a new handle. cmd must not be grouped.
func Own(cmd Command) *Ptr {
	if cmd == nil {
		return &Ptr{err: ErrNilCommand}
	}
	if cmd.IsGrouped() {
		return &Ptr{err: ErrAlreadyGrouped}
	}
	return &Ptr{cmd: cmd}
}

// Fail returns an empty handle carrying err. Every handle derived from it
// carries err too.
func Fail(err error) *Ptr {
	return &Ptr{err: err}
}

// Err returns the first error recorded while building the handle.
func (p *Ptr) Err() error {
	if p == nil {
		return ErrNilCommand
	}
	if p.err != nil {
		return p.err
	}
	return nil
}

// Get borrows the owned command without transferring ownership, or returns
// nil when the handle is empty.
func (p *Ptr) Get() Command {
	if p == nil {
		return nil
	}
	return p.cmd
}

// Unwrap moves the owned command out of the handle.
func (p *Ptr) Unwrap() (Command, error) {
	return p.take()
}

// Name returns the owned command name, or "" for an empty handle.
func (p *Ptr) Name() string {
	if cmd := p.Get(); cmd != nil {
		return cmd.Name()
	}
	return ""
}

// Schedule submits the owned command to the scheduler carried by ctx.
func (p *Ptr) Schedule(ctx context.Context) bool {
	if cmd := p.Get(); cmd != nil {
		return Schedule(ctx, cmd)
	}
	return false
}

// Cancel cancels the owned command on the scheduler carried by ctx.
func (p *Ptr) Cancel(ctx context.Context) {
	if cmd := p.Get(); cmd != nil {
		Cancel(ctx, cmd)
	}
}

// IsScheduled reports whether the owned command is active.
func (p *Ptr) IsScheduled(ctx context.Context) bool {
	if cmd := p.Get(); cmd != nil {
		return IsScheduled(ctx, cmd)
	}
	return false
}

func (p *Ptr) take() (Command, error) {
	if p == nil {
		return nil, ErrNilCommand
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.cmd == nil {
		return nil, ErrMoved
	}
	cmd := p.cmd
	p.cmd = nil
	p.err = ErrMoved
	return cmd, nil
}

func takeAll(ptrs []*Ptr) ([]Command, error) {
	var firstErr error
	ret := make([]Command, 0, len(ptrs))
	for _, ptr := range ptrs {
		cmd, err := ptr.take()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		ret = append(ret, cmd)
	}
	return ret, firstErr
}

func (p *Ptr) decorate(build func(cmd Command) (Command, error)) *Ptr {
	cmd, err := p.take()
	if err != nil {
		return &Ptr{err: err}
	}
	decorated, err := build(cmd)
	if err != nil {
		return &Ptr{err: err}
	}
	return &Ptr{cmd: decorated}
}

func (p *Ptr) compose(others []*Ptr, build func(cmd Command, others []Command) (Command, error)) *Ptr {
	cmd, err := p.take()
	rest, restErr := takeAll(others)
	if err == nil {
		err = restErr
	}
	if err != nil {
		return &Ptr{err: err}
	}
	composed, err := build(cmd, rest)
	if err != nil {
		return &Ptr{err: err}
	}
	return &Ptr{cmd: composed}
}

// WithTimeout races the command against a wait of d.
func (p *Ptr) WithTimeout(d time.Duration) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		race, err := NewRace(cmd, NewWait(d))
		if err != nil {
			return nil, err
		}
		race.SetName(cmd.Name())
		return race, nil
	})
}

// Until races the command against condition.
func (p *Ptr) Until(condition func() bool) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		race, err := NewRace(cmd, NewWaitUntil(condition))
		if err != nil {
			return nil, err
		}
		race.SetName(cmd.Name())
		return race, nil
	})
}

// WithInterrupt is an alias of Until.
func (p *Ptr) WithInterrupt(condition func() bool) *Ptr {
	return p.Until(condition)
}

// OnlyWhile runs the command until condition stops holding.
func (p *Ptr) OnlyWhile(condition func() bool) *Ptr {
	return p.Until(func() bool { return !condition() })
}

// IgnoringDisable overrides whether the command runs when disabled.
func (p *Ptr) IgnoringDisable(runsWhenDisabled bool) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		wrapper, err := NewWrapper(cmd)
		if err != nil {
			return nil, err
		}
		return &disabledOverride{Wrapper: wrapper, runsWhenDisabled: runsWhenDisabled}, nil
	})
}

// WithInterruptBehavior overrides the conflict policy of the command.
func (p *Ptr) WithInterruptBehavior(behavior InterruptionBehavior) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		wrapper, err := NewWrapper(cmd)
		if err != nil {
			return nil, err
		}
		return &behaviorOverride{Wrapper: wrapper, behavior: behavior}, nil
	})
}

// WithName renames the command.
func (p *Ptr) WithName(name string) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		wrapper, err := NewWrapper(cmd)
		if err != nil {
			return nil, err
		}
		wrapper.SetName(name)
		return wrapper, nil
	})
}

// BeforeStarting runs fn, claiming requirements, before the command starts.
func (p *Ptr) BeforeStarting(fn func(ctx context.Context), requirements ...Subsystem) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		seq, err := NewSequential(NewInstant(fn, requirements...), cmd)
		if err != nil {
			return nil, err
		}
		seq.SetName(cmd.Name())
		return seq, nil
	})
}

// AndThen runs fn, claiming requirements, after the command finishes.
func (p *Ptr) AndThen(fn func(ctx context.Context), requirements ...Subsystem) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		seq, err := NewSequential(cmd, NewInstant(fn, requirements...))
		if err != nil {
			return nil, err
		}
		seq.SetName(cmd.Name())
		return seq, nil
	})
}

// Then runs next after the command, in order.
func (p *Ptr) Then(next ...*Ptr) *Ptr {
	return p.compose(next, func(cmd Command, others []Command) (Command, error) {
		return NewSequential(append([]Command{cmd}, others...)...)
	})
}

// AlongWith runs others in parallel with the command until all finish.
func (p *Ptr) AlongWith(others ...*Ptr) *Ptr {
	return p.compose(others, func(cmd Command, others []Command) (Command, error) {
		return NewParallel(append([]Command{cmd}, others...)...)
	})
}

// RaceWith runs others in parallel with the command until any finishes.
func (p *Ptr) RaceWith(others ...*Ptr) *Ptr {
	return p.compose(others, func(cmd Command, others []Command) (Command, error) {
		return NewRace(append([]Command{cmd}, others...)...)
	})
}

// DeadlineWith runs others alongside the command until the command finishes.
func (p *Ptr) DeadlineWith(others ...*Ptr) *Ptr {
	return p.compose(others, func(cmd Command, others []Command) (Command, error) {
		return NewDeadline(cmd, others...)
	})
}

// Repeatedly restarts the command whenever it finishes.
func (p *Ptr) Repeatedly() *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		return NewRepeat(cmd)
	})
}

// Perpetually keeps the command active after it reports finished.
func (p *Ptr) Perpetually() *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		wrapper, err := NewWrapper(cmd)
		if err != nil {
			return nil, err
		}
		return &perpetual{Wrapper: wrapper}, nil
	})
}

// AsProxy schedules the command independently when the handle runs.
func (p *Ptr) AsProxy() *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		return NewProxy(cmd)
	})
}

// Unless skips the command when condition holds on start.
func (p *Ptr) Unless(condition func() bool) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		either, err := NewEither(None(), cmd, condition)
		if err != nil {
			return nil, err
		}
		either.SetName(cmd.Name())
		return either, nil
	})
}

// OnlyIf runs the command only when condition holds on start.
func (p *Ptr) OnlyIf(condition func() bool) *Ptr {
	return p.Unless(func() bool { return !condition() })
}

// FinallyDo calls fn after the command ended, either way.
func (p *Ptr) FinallyDo(fn func(ctx context.Context, interrupted bool)) *Ptr {
	return p.decorate(func(cmd Command) (Command, error) {
		wrapper, err := NewWrapper(cmd)
		if err != nil {
			return nil, err
		}
		return &finally{Wrapper: wrapper, fn: fn}, nil
	})
}

// HandleInterrupt calls fn after the command was interrupted.
func (p *Ptr) HandleInterrupt(fn func(ctx context.Context)) *Ptr {
	return p.FinallyDo(func(ctx context.Context, interrupted bool) {
		if interrupted && fn != nil {
			fn(ctx)
		}
	})
}
