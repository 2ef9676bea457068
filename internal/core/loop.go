package core

import (
	"sort"
	"time"
)

// FrameID identifies an outstanding frame request. The zero value never
// names a live request.
type FrameID uint64

// Loop is a cooperative, single-threaded scheduler. Hosts call Pump from
// their UI goroutine; every callback runs inside Pump, so callbacks never
// overlap each other or other UI handlers.
type Loop struct {
	now   time.Time
	pacer *FixedStep

	nextFrame FrameID
	frames    map[FrameID]func(time.Time)
	order     []FrameID

	seq    uint64
	timers []*Timer
}

// Timer is a one-shot callback armed on a Loop.
type Timer struct {
	loop     *Loop
	seq      uint64
	deadline time.Time
	fn       func()
	active   bool
}

// NewLoop returns a loop whose clock starts at start. A nil pacer delivers
// frames on every pump.
func NewLoop(start time.Time, pacer *FixedStep) *Loop {
	return &Loop{now: start, pacer: pacer, frames: map[FrameID]func(time.Time){}}
}

// Now returns the time of the most recent pump.
func (l *Loop) Now() time.Time { return l.now }

// RequestFrame schedules fn for the next frame and returns its handle.
// Requests made while frames are being delivered wait for the next pump.
func (l *Loop) RequestFrame(fn func(now time.Time)) FrameID {
	l.nextFrame++
	id := l.nextFrame
	l.frames[id] = fn
	l.order = append(l.order, id)
	return id
}

// CancelFrame drops a pending frame request. Cancelling an unknown or
// already delivered request is a no-op.
func (l *Loop) CancelFrame(id FrameID) {
	delete(l.frames, id)
}

// FramePending reports whether id is still waiting for delivery.
func (l *Loop) FramePending(id FrameID) bool {
	_, ok := l.frames[id]
	return ok
}

// PendingFrames returns the number of outstanding frame requests.
func (l *Loop) PendingFrames() int { return len(l.frames) }

// AfterFunc arms fn to run on the first pump at or after now+d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	l.seq++
	t := &Timer{loop: l, seq: l.seq, deadline: l.now.Add(d), fn: fn, active: true}
	l.timers = append(l.timers, t)
	return t
}

// PendingTimers returns the number of armed timers.
func (l *Loop) PendingTimers() int { return len(l.timers) }

// Stop disarms the timer. It reports whether the timer was still armed.
func (t *Timer) Stop() bool {
	if t == nil || !t.active {
		return false
	}
	t.active = false
	t.loop.removeTimer(t)
	return true
}

func (l *Loop) removeTimer(t *Timer) {
	for i, other := range l.timers {
		if other == t {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}

// Pump advances the clock to now, fires due timers in deadline order and then
// delivers the frame requests that were outstanding when delivery began.
// A callback that cancels a later frame or timer in the same pump prevents
// it from running.
func (l *Loop) Pump(now time.Time) {
	if now.After(l.now) {
		l.now = now
	}
	l.fireTimers()
	if l.pacer != nil && !l.pacer.ShouldStep(l.now) {
		return
	}
	l.deliverFrames()
}

func (l *Loop) fireTimers() {
	var due, rest []*Timer
	for _, t := range l.timers {
		if !t.deadline.After(l.now) {
			due = append(due, t)
			continue
		}
		rest = append(rest, t)
	}
	if len(due) == 0 {
		return
	}
	l.timers = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		if !t.active {
			continue
		}
		t.active = false
		t.fn()
	}
}

func (l *Loop) deliverFrames() {
	batch := l.order
	l.order = nil
	for _, id := range batch {
		fn, ok := l.frames[id]
		if !ok {
			continue
		}
		delete(l.frames, id)
		fn(l.now)
	}
}
