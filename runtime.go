package arbiter

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/viant/arbiter/command"
	"github.com/viant/arbiter/routine"
	"github.com/viant/arbiter/scheduler"
)

// Runtime drives the scheduler at a fixed period and exposes routine
// hot-swap helpers.
type Runtime struct {
	scheduler *scheduler.Scheduler
	routines  *routine.Service
	period    time.Duration
	logger    *log.Logger
}

// Tick performs one scheduler pass.
func (r *Runtime) Tick(ctx context.Context) {
	r.scheduler.Run(ctx)
}

// Loop ticks the scheduler once per period until ticks passes were made or
// ctx is done. ticks <= 0 runs until ctx is done. The first pass happens
// immediately.
func (r *Runtime) Loop(ctx context.Context, ticks int) error {
	if r.period <= 0 {
		return fmt.Errorf("loop period must be > 0, got %s", r.period)
	}
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()
	for made := 0; ticks <= 0 || made < ticks; made++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Tick(ctx)
		if ticks > 0 && made+1 == ticks {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// LoadRoutine loads a routine definition.
func (r *Runtime) LoadRoutine(ctx context.Context, location string) (*routine.Routine, error) {
	return r.routines.Load(ctx, location)
}

// ScheduleRoutine builds the routine at location and schedules it. The
// returned command can be used to observe or cancel the run.
func (r *Runtime) ScheduleRoutine(ctx context.Context, location string) (command.Command, error) {
	handle, err := r.routines.Build(ctx, location)
	if err != nil {
		return nil, err
	}
	cmd, err := handle.Unwrap()
	if err != nil {
		return nil, err
	}
	r.scheduler.Schedule(cmd)
	r.logger.Printf("arbiter: scheduled routine %s", cmd.Name())
	return cmd, nil
}

// RefreshRoutine discards any cached copy of the routine at location. The
// next load reads it again.
func (r *Runtime) RefreshRoutine(location string) {
	r.routines.Refresh(location)
}

// UpsertRoutine stores the supplied YAML at location and caches the decoded
// routine. When data is nil the call falls back to RefreshRoutine.
func (r *Runtime) UpsertRoutine(ctx context.Context, location string, data []byte) error {
	if data == nil {
		r.RefreshRoutine(location)
		return nil
	}
	if _, err := r.routines.Upsert(ctx, location, data); err != nil {
		return fmt.Errorf("failed to upsert routine %s: %w", location, err)
	}
	return nil
}
