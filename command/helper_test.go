package command

import "context"

type tracked struct {
	Base
	finished         bool
	behavior         InterruptionBehavior
	runsWhenDisabled bool
	inits, execs     int
	ends             []bool
}

func newTracked(name string, requirements ...Subsystem) *tracked {
	ret := &tracked{}
	ret.SetName(name)
	ret.AddRequirements(requirements...)
	return ret
}

func (c *tracked) Initialize(context.Context) { c.inits++ }

func (c *tracked) Execute(context.Context) { c.execs++ }

func (c *tracked) IsFinished() bool { return c.finished }

func (c *tracked) End(_ context.Context, interrupted bool) { c.ends = append(c.ends, interrupted) }

func (c *tracked) InterruptionBehavior() InterruptionBehavior { return c.behavior }

func (c *tracked) RunsWhenDisabled() bool { return c.runsWhenDisabled }
