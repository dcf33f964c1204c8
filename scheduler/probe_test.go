package scheduler

import (
	"context"

	"github.com/viant/arbiter/command"
)

// journal records lifecycle calls across commands in call order.
type journal struct {
	entries []string
}

func (j *journal) add(entry string) { j.entries = append(j.entries, entry) }

func (j *journal) reset() { j.entries = nil }

type probe struct {
	command.Base
	journal          *journal
	finished         bool
	behavior         command.InterruptionBehavior
	runsWhenDisabled bool
	onExecute        func(ctx context.Context)
	inits, execs     int
	ends             []bool
}

func newProbe(j *journal, name string, requirements ...command.Subsystem) *probe {
	ret := &probe{journal: j}
	ret.SetName(name)
	ret.AddRequirements(requirements...)
	return ret
}

func (p *probe) Initialize(ctx context.Context) {
	p.inits++
	p.journal.add(p.Name() + ".init")
}

func (p *probe) Execute(ctx context.Context) {
	p.execs++
	p.journal.add(p.Name() + ".exec")
	if p.onExecute != nil {
		p.onExecute(ctx)
	}
}

func (p *probe) IsFinished() bool { return p.finished }

func (p *probe) End(ctx context.Context, interrupted bool) {
	p.ends = append(p.ends, interrupted)
	if interrupted {
		p.journal.add(p.Name() + ".end(true)")
	} else {
		p.journal.add(p.Name() + ".end(false)")
	}
}

func (p *probe) InterruptionBehavior() command.InterruptionBehavior { return p.behavior }

func (p *probe) RunsWhenDisabled() bool { return p.runsWhenDisabled }

type recordingSubsystem struct {
	*command.SubsystemBase
	journal *journal
}

func newSubsystem(j *journal, name string) *recordingSubsystem {
	return &recordingSubsystem{SubsystemBase: command.NewSubsystem(name, nil), journal: j}
}

func (r *recordingSubsystem) Periodic(ctx context.Context) {
	if r.journal != nil {
		r.journal.add(r.Name() + ".periodic")
	}
}
