// Package scheduler arbitrates and executes commands once per control tick.
//
// A Scheduler is constructed explicitly and driven by an external fixed-period
// tick source calling Run. Each Run polls trigger bindings, applies pending
// schedule and cancel requests (resolving requirement conflicts), executes the
// active commands, schedules default commands for unclaimed subsystems and
// finally invokes every subsystem's periodic hook.
//
// The scheduler is single-threaded: all methods must be called from the
// goroutine driving Run. Requests made from within Run, by commands or
// trigger actions, are queued and applied after the pass that issued them.
package scheduler
