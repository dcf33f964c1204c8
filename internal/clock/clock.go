// Package clock is the single time source for command timing and loop
// overrun detection. Tests replace NowFunc to step time deterministically.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Since returns the time elapsed since t according to NowFunc.
func Since(t time.Time) time.Duration { return NowFunc().Sub(t) }

// Manual is a hand-driven clock for tests and simulations.
type Manual struct {
	now time.Time
}

// NewManual returns a manual clock positioned at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time { return m.now }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }

// Install makes m the package time source and returns a restore func.
func (m *Manual) Install() func() {
	prev := NowFunc
	NowFunc = m.Now
	return func() { NowFunc = prev }
}
