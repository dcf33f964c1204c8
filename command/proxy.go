package command

import "context"

// Proxy schedules its target on the scheduler instead of running it, and
// finishes once the target is no longer scheduled. A proxy declares no
// requirements: the target's requirements are arbitrated when it is admitted.
type Proxy struct {
	Base
	target    Command
	scheduler Scheduler
}

// NewProxy takes ownership of target. The target stays ungrouped so that it
// remains schedulable.
func NewProxy(target Command) (*Proxy, error) {
	if target == nil {
		return nil, ErrNilCommand
	}
	if target.IsGrouped() {
		return nil, ErrAlreadyGrouped
	}
	ret := &Proxy{target: target}
	ret.SetName("proxy(" + target.Name() + ")")
	return ret, nil
}

// Target returns the proxied command.
func (p *Proxy) Target() Command { return p.target }

func (p *Proxy) Initialize(ctx context.Context) {
	p.scheduler = SchedulerFrom(ctx)
	if p.scheduler != nil {
		p.scheduler.Schedule(p.target)
	}
}

func (p *Proxy) IsFinished() bool {
	return p.scheduler == nil || !p.scheduler.IsScheduled(p.target)
}

func (p *Proxy) End(_ context.Context, interrupted bool) {
	if interrupted && p.scheduler != nil {
		p.scheduler.Cancel(p.target)
	}
	p.scheduler = nil
}

func (p *Proxy) RunsWhenDisabled() bool { return p.target.RunsWhenDisabled() }
