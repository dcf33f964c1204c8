package command

import "context"

// Scheduler is the subset of the scheduler visible to commands.
type Scheduler interface {
	Schedule(cmd Command)
	Cancel(cmd Command)
	IsScheduled(cmd Command) bool
}

type schedulerKeyT struct{}

var schedulerKey schedulerKeyT

// WithScheduler embeds s in ctx.
func WithScheduler(ctx context.Context, s Scheduler) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, schedulerKey, s)
}

// SchedulerFrom extracts the scheduler from ctx, or nil.
func SchedulerFrom(ctx context.Context) Scheduler {
	if ctx == nil {
		return nil
	}
	if s, ok := ctx.Value(schedulerKey).(Scheduler); ok {
		return s
	}
	return nil
}

// Schedule submits cmd to the scheduler carried by ctx. It returns false when
// ctx carries no scheduler.
func Schedule(ctx context.Context, cmd Command) bool {
	s := SchedulerFrom(ctx)
	if s == nil {
		return false
	}
	s.Schedule(cmd)
	return true
}

// Cancel cancels cmd on the scheduler carried by ctx.
func Cancel(ctx context.Context, cmd Command) {
	if s := SchedulerFrom(ctx); s != nil {
		s.Cancel(cmd)
	}
}

// IsScheduled reports whether cmd is active on the scheduler carried by ctx.
func IsScheduled(ctx context.Context, cmd Command) bool {
	if s := SchedulerFrom(ctx); s != nil {
		return s.IsScheduled(cmd)
	}
	return false
}
