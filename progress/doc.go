// Package progress aggregates command lifecycle counters (initialized,
// executed, finished, interrupted, active) for a scheduler. A tracker is fed
// by the event stream and can notify an observer on every change.
package progress
