package scheduler

import (
	"fmt"
	"slices"

	"github.com/viant/arbiter/command"
)

// RegisterSubsystem registers subsystems whose periodic hook runs every tick
// and whose default commands are scheduled when they are unclaimed.
func (s *Scheduler) RegisterSubsystem(subsystems ...command.Subsystem) {
	for _, subsystem := range subsystems {
		if subsystem == nil || slices.Contains(s.subsystems, subsystem) {
			continue
		}
		s.subsystems = append(s.subsystems, subsystem)
	}
}

// UnregisterSubsystem removes subsystems and their default commands.
func (s *Scheduler) UnregisterSubsystem(subsystems ...command.Subsystem) {
	for _, subsystem := range subsystems {
		s.subsystems = slices.DeleteFunc(s.subsystems, func(candidate command.Subsystem) bool { return candidate == subsystem })
		delete(s.defaults, subsystem)
	}
}

// Subsystems returns the registered subsystems in registration order.
func (s *Scheduler) Subsystems() []command.Subsystem {
	return slices.Clone(s.subsystems)
}

// SetDefaultCommand registers cmd to run whenever subsystem is unclaimed.
// The subsystem is registered if needed. cmd must require subsystem and must
// not belong to a composition.
func (s *Scheduler) SetDefaultCommand(subsystem command.Subsystem, cmd command.Command) error {
	if subsystem == nil {
		return ErrNilSubsystem
	}
	if cmd == nil {
		return command.ErrNilCommand
	}
	if cmd.IsGrouped() {
		return fmt.Errorf("default command %s: %w", cmd.Name(), command.ErrAlreadyGrouped)
	}
	if !cmd.Requirements().Contains(subsystem) {
		return fmt.Errorf("default command %s for %s: %w", cmd.Name(), subsystem.Name(), ErrDefaultRequirement)
	}
	if cmd.InterruptionBehavior() == command.CancelIncoming {
		s.logger.Printf("scheduler: default command %s for %s cancels incoming commands; %s will not be claimable", cmd.Name(), subsystem.Name(), subsystem.Name())
	}
	s.RegisterSubsystem(subsystem)
	s.defaults[subsystem] = cmd
	return nil
}

// DefaultCommand returns the default command of subsystem, or nil.
func (s *Scheduler) DefaultCommand(subsystem command.Subsystem) command.Command {
	return s.defaults[subsystem]
}

// RemoveDefaultCommand unregisters the default command of subsystem.
func (s *Scheduler) RemoveDefaultCommand(subsystem command.Subsystem) {
	delete(s.defaults, subsystem)
}
