package core

import "time"

// FixedStep helps run simulation updates at a steady rate that is independent
// of the host's frame rate. Rates below one step per second are allowed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting rate steps per
// second. The first call to ShouldStep always reports true.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Duration(float64(time.Second) / rate)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Step returns the interval between steps.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// Backlog beyond one pending step is dropped so a stalled host does not
// burst through generations when it resumes.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Reset drops any accumulated time, e.g. after unpausing.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
