// Package trigger binds commands to boolean conditions polled by the
// scheduler once per tick.
//
// A Trigger wraps a condition. Binding a command registers an edge detector
// with the scheduler: the condition is sampled when the binding is made and
// again on every Run, and the command is scheduled or cancelled when the
// sampled value changes.
//
//	button := trigger.New(sched, joystick.A)
//	button.OnTrue(raiseArm)
//	button.And(joystick.B).WhileTrue(intake)
package trigger
