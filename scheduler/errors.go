package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrReentrantRun       = errors.New("run invoked from within run")
	ErrNilSubsystem       = errors.New("subsystem is nil")
	ErrDefaultRequirement = errors.New("default command must require its subsystem")
)

// ProgrammingError reports misuse of the scheduler. The offending operation
// is ignored and the control loop continues.
type ProgrammingError struct {
	Op      string
	Command string
	Err     error
}

func (e *ProgrammingError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("scheduler: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("scheduler: %s %s: %v", e.Op, e.Command, e.Err)
}

func (e *ProgrammingError) Unwrap() error { return e.Err }
