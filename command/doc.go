// Package command defines the unit of behaviour arbitrated by the scheduler
// and the operators that compose commands into larger ones.
//
// A Command claims a set of subsystems (its requirements) for as long as it is
// active. Composite commands own their children exclusively: once a command has
// been handed to a composition it is marked grouped and can neither be
// scheduled on its own nor be reused by a second composition.
//
// Commands are normally assembled through the move-only Ptr handle:
//
//	auto := command.Own(driveForward).
//		WithTimeout(2 * time.Second).
//		AndThen(stopArm, arm)
//	sched.Schedule(auto.Get())
//
// All lifecycle callbacks run on the scheduler's goroutine and must return
// promptly; the context they receive carries the scheduler (see SchedulerFrom).
package command
