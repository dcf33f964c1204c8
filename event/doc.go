// Package event carries command lifecycle notifications (initialize,
// execute, interrupt, finish) from the scheduler to observers such as
// loggers, progress counters and tracers. Delivery is synchronous and
// fire-and-forget: listener failures are logged and never reach the tick.
package event
