package trigger

import (
	"context"

	"github.com/viant/arbiter/command"
)

// Binder registers polled bindings. scheduler.Scheduler implements it.
type Binder interface {
	AddBinding(when func() bool, do func(ctx context.Context))
}

// Trigger is a condition that commands can be bound to.
type Trigger struct {
	binder    Binder
	condition func() bool
}

// New returns a trigger over condition whose bindings are registered with
// binder. A nil condition never holds.
func New(binder Binder, condition func() bool) *Trigger {
	if condition == nil {
		condition = func() bool { return false }
	}
	return &Trigger{binder: binder, condition: condition}
}

// Get samples the condition.
func (t *Trigger) Get() bool { return t.condition() }

// OnTrue schedules cmd when the condition changes to true.
func (t *Trigger) OnTrue(cmd command.Command) *Trigger {
	t.bind(func(ctx context.Context, rising bool) {
		if rising {
			command.Schedule(ctx, cmd)
		}
	})
	return t
}

// OnFalse schedules cmd when the condition changes to false.
func (t *Trigger) OnFalse(cmd command.Command) *Trigger {
	t.bind(func(ctx context.Context, rising bool) {
		if !rising {
			command.Schedule(ctx, cmd)
		}
	})
	return t
}

// WhileTrue schedules cmd when the condition changes to true and cancels it
// when the condition changes to false.
func (t *Trigger) WhileTrue(cmd command.Command) *Trigger {
	t.bind(func(ctx context.Context, rising bool) {
		if rising {
			command.Schedule(ctx, cmd)
			return
		}
		command.Cancel(ctx, cmd)
	})
	return t
}

// WhileFalse schedules cmd when the condition changes to false and cancels
// it when the condition changes to true.
func (t *Trigger) WhileFalse(cmd command.Command) *Trigger {
	t.bind(func(ctx context.Context, rising bool) {
		if !rising {
			command.Schedule(ctx, cmd)
			return
		}
		command.Cancel(ctx, cmd)
	})
	return t
}

// ToggleOnTrue toggles cmd each time the condition changes to true.
func (t *Trigger) ToggleOnTrue(cmd command.Command) *Trigger {
	t.bind(func(ctx context.Context, rising bool) {
		if !rising {
			return
		}
		if command.IsScheduled(ctx, cmd) {
			command.Cancel(ctx, cmd)
			return
		}
		command.Schedule(ctx, cmd)
	})
	return t
}

// And returns a trigger holding while both t and other hold.
func (t *Trigger) And(other func() bool) *Trigger {
	return New(t.binder, func() bool { return t.condition() && other() })
}

// Or returns a trigger holding while t or other holds.
func (t *Trigger) Or(other func() bool) *Trigger {
	return New(t.binder, func() bool { return t.condition() || other() })
}

// Negate returns a trigger holding while t does not.
func (t *Trigger) Negate() *Trigger {
	return New(t.binder, func() bool { return !t.condition() })
}

func (t *Trigger) bind(onChange func(ctx context.Context, rising bool)) {
	previous := t.condition()
	current := previous
	t.binder.AddBinding(func() bool {
		previous, current = current, t.condition()
		return previous != current
	}, func(ctx context.Context) {
		onChange(ctx, current)
	})
}
