package progress

import (
	"sync"
	"time"

	"github.com/viant/arbiter/event"
	"github.com/viant/arbiter/internal/clock"
)

// Delta represents an incremental counter change. The fields are signed and
// may be positive or negative.
type Delta struct {
	Initialized int
	Executed    int
	Finished    int
	Interrupted int
	Active      int
}

// Progress keeps aggregated lifecycle counters. It is safe for concurrent use
// so that hosts may read snapshots from outside the control loop.
type Progress struct {
	StartedAt time.Time
	LastTick  uint64

	Initialized int
	Executed    int
	Finished    int
	Interrupted int
	Active      int

	sync.Mutex
	onChange func(Progress)
}

// New returns a tracker; onChange may be nil.
func New(onChange func(Progress)) *Progress {
	return &Progress{StartedAt: clock.Now(), onChange: onChange}
}

// Update applies d. The onChange callback receives a copy taken under the
// lock and is invoked outside of it.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.Initialized += d.Initialized
	p.Executed += d.Executed
	p.Finished += d.Finished
	p.Interrupted += d.Interrupted
	p.Active += d.Active
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange replaces the change callback; nil disables it.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// Listener returns an event listener feeding the tracker.
func (p *Progress) Listener() event.Listener {
	return func(e *event.Event) {
		p.Lock()
		if e.Context != nil && e.Context.Tick > p.LastTick {
			p.LastTick = e.Context.Tick
		}
		p.Unlock()
		switch e.Type {
		case event.Initialize:
			p.Update(Delta{Initialized: 1, Active: 1})
		case event.Execute:
			p.Update(Delta{Executed: 1})
		case event.Finish:
			p.Update(Delta{Finished: 1, Active: -1})
		case event.Interrupt:
			p.Update(Delta{Interrupted: 1, Active: -1})
		}
	}
}

func (p *Progress) copy() Progress {
	return Progress{
		StartedAt:   p.StartedAt,
		LastTick:    p.LastTick,
		Initialized: p.Initialized,
		Executed:    p.Executed,
		Finished:    p.Finished,
		Interrupted: p.Interrupted,
		Active:      p.Active,
	}
}
