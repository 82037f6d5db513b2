package core

import "time"

// FixedStep converts variable host frame time into a whole number of
// fixed-length simulation ticks. Leftover time carries over to the next call.
type FixedStep struct {
	interval time.Duration
	acc      time.Duration
}

// NewFixedStep creates an accumulator for the given tick interval.
// A non-positive interval falls back to the default cadence.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = DefaultConfig().TickInterval
	}
	return &FixedStep{interval: interval}
}

// Interval returns the tick period.
func (f *FixedStep) Interval() time.Duration {
	return f.interval
}

// Advance adds elapsed host time and returns how many ticks are now due.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	f.acc += elapsed
	n := int(f.acc / f.interval)
	f.acc -= time.Duration(n) * f.interval
	return n
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
