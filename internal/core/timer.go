package core

import "time"

// FixedStep paces frame delivery at a steady frames-per-second rate. The
// caller supplies the clock so pacing stays deterministic under test.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(fps int) *FixedStep {
	if fps <= 0 {
		fps = 60
	}
	fs := &FixedStep{}
	fs.SetRate(fps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the frame rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// Interval returns the target duration between frames.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a frame is due at now. At most one frame is
// owed per call; a long stall does not queue a burst of frames.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
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
