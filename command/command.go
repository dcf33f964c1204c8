package command

import "context"

// InterruptionBehavior decides which of two commands yields when their
// requirements overlap.
type InterruptionBehavior int

const (
	// CancelSelf lets an incoming command interrupt this one.
	CancelSelf InterruptionBehavior = iota
	// CancelIncoming keeps this command running and rejects the incoming one.
	CancelIncoming
)

func (b InterruptionBehavior) String() string {
	switch b {
	case CancelSelf:
		return "cancelSelf"
	case CancelIncoming:
		return "cancelIncoming"
	}
	return "unknown"
}

// Command represents a behaviour competing for exclusive use of subsystems.
// Implementations must be pointer types so that they can serve as map keys
// and identities; embedding *Base or Base provides the default methods.
type Command interface {
	// ID returns an identifier unique to this instance.
	ID() string
	// Name returns a human readable name.
	Name() string
	// Requirements returns the subsystems claimed while the command runs.
	Requirements() Requirements
	// Initialize is called once when the command is admitted.
	Initialize(ctx context.Context)
	// Execute is called on every tick while the command is active.
	Execute(ctx context.Context)
	// IsFinished reports whether the command has completed.
	IsFinished() bool
	// End is called exactly once when the command finishes or is interrupted.
	End(ctx context.Context, interrupted bool)
	// InterruptionBehavior returns the conflict policy of the command.
	InterruptionBehavior() InterruptionBehavior
	// RunsWhenDisabled reports whether the command may run while disabled.
	RunsWhenDisabled() bool
	// IsGrouped reports whether the command belongs to a composition.
	IsGrouped() bool
	// SetGrouped marks or clears the composition ownership flag.
	SetGrouped(grouped bool)
}

// Subsystem is an exclusive-access resource claimed by commands.
type Subsystem interface {
	Name() string
	// Periodic is invoked once per scheduler tick after all commands ran.
	Periodic(ctx context.Context)
}

// HasRequirement reports whether cmd requires subsystem.
func HasRequirement(cmd Command, subsystem Subsystem) bool {
	if cmd == nil {
		return false
	}
	return cmd.Requirements().Contains(subsystem)
}

// RequirementsDisjoint reports whether a and b share no subsystem.
func RequirementsDisjoint(a, b Command) bool {
	if a == nil || b == nil {
		return true
	}
	return a.Requirements().Disjoint(b.Requirements())
}
