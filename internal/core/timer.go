package core

import "time"

// FixedStep paces simulation ticks at a fixed interval independent of the
// frame rate of the driver that polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep returns a FixedStep that allows one tick per interval. The
// first poll always steps.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick interval. Non-positive values fall back to
// 100ms.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	f.step = interval
}

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a tick is due at now. At most one tick is
// reported per call; backlog beyond one interval is dropped.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return true
}

// Restart forgets elapsed time so the next poll steps immediately.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}
