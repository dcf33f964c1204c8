package command

import (
	"context"

	"github.com/viant/arbiter/internal/idgen"
)

// Base carries the identity, requirements and grouped flag of a command and
// supplies the default lifecycle: no-op callbacks, never finishing,
// CancelSelf and not running when disabled.
type Base struct {
	id           string
	name         string
	requirements Requirements
	grouped      bool
}

// ID returns the instance identifier, assigned on first use.
func (b *Base) ID() string {
	if b.id == "" {
		b.id = idgen.New()
	}
	return b.id
}

// Name returns the configured name or a generated one.
func (b *Base) Name() string {
	if b.name != "" {
		return b.name
	}
	return "command-" + idgen.Short(b.ID())
}

// SetName sets the command name.
func (b *Base) SetName(name string) {
	b.name = name
}

// Requirements returns the declared requirements.
func (b *Base) Requirements() Requirements {
	return b.requirements
}

// AddRequirements declares additional requirements.
func (b *Base) AddRequirements(subsystems ...Subsystem) {
	b.requirements = b.requirements.With(subsystems...)
}

func (b *Base) Initialize(ctx context.Context) {}

func (b *Base) Execute(ctx context.Context) {}

func (b *Base) IsFinished() bool { return false }

func (b *Base) End(ctx context.Context, interrupted bool) {}

func (b *Base) InterruptionBehavior() InterruptionBehavior { return CancelSelf }

func (b *Base) RunsWhenDisabled() bool { return false }

func (b *Base) IsGrouped() bool { return b.grouped }

func (b *Base) SetGrouped(grouped bool) { b.grouped = grouped }
