package command

import (
	"context"
	"time"

	"github.com/viant/arbiter/internal/clock"
)

// Wait finishes once its duration has elapsed since Initialize. Time is read
// from the clock on each IsFinished; no timer is armed.
type Wait struct {
	Base
	duration time.Duration
	started  time.Time
}

// NewWait returns a command that waits for d.
func NewWait(d time.Duration) *Wait {
	ret := &Wait{duration: d}
	ret.SetName("wait(" + d.String() + ")")
	return ret
}

func (w *Wait) Initialize(_ context.Context) {
	w.started = clock.Now()
}

func (w *Wait) IsFinished() bool {
	return clock.Since(w.started) >= w.duration
}

func (w *Wait) RunsWhenDisabled() bool { return true }

// WaitUntil finishes as soon as its condition holds.
type WaitUntil struct {
	Base
	condition func() bool
}

// NewWaitUntil returns a command polling condition once per tick.
func NewWaitUntil(condition func() bool) *WaitUntil {
	ret := &WaitUntil{condition: condition}
	ret.SetName("waitUntil")
	return ret
}

func (w *WaitUntil) IsFinished() bool {
	return w.condition == nil || w.condition()
}

func (w *WaitUntil) RunsWhenDisabled() bool { return true }
