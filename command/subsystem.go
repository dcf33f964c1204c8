package command

import "context"

// SubsystemBase is an embeddable Subsystem with a name and an optional
// periodic hook.
type SubsystemBase struct {
	name     string
	periodic func(ctx context.Context)
}

// NewSubsystem returns a named subsystem; periodic may be nil.
func NewSubsystem(name string, periodic func(ctx context.Context)) *SubsystemBase {
	return &SubsystemBase{name: name, periodic: periodic}
}

func (s *SubsystemBase) Name() string { return s.name }

func (s *SubsystemBase) Periodic(ctx context.Context) {
	if s.periodic != nil {
		s.periodic(ctx)
	}
}
