package controller

import (
	"time"

	"go.uber.org/zap"

	"lifeboard/internal/ui"
)

// State is the animation state.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// State returns the current animation state.
func (c *Controller) State() State { return c.state }

// IsPaused reports whether no frame is scheduled.
func (c *Controller) IsPaused() bool { return c.state == Paused }

// FramePending reports whether a frame request is outstanding on the
// scheduler. It agrees with !IsPaused between host turns.
func (c *Controller) FramePending() bool {
	return c.frame != 0 && c.sched.FramePending(c.frame)
}

// Play starts the animation: one frame runs immediately and the next is
// requested. Playing an already playing controller does nothing.
func (c *Controller) Play() {
	c.dropResume()
	c.play()
}

// Pause stops the animation and cancels the outstanding frame before
// returning.
func (c *Controller) Pause() {
	c.dropResume()
	c.pause()
}

// TogglePlay plays when paused and pauses otherwise.
func (c *Controller) TogglePlay() {
	if c.IsPaused() {
		c.Play()
		return
	}
	c.Pause()
}

// AdvanceOne steps and repaints once. It is inert while playing.
func (c *Controller) AdvanceOne() {
	if c.state == Playing {
		return
	}
	c.step()
}

func (c *Controller) play() {
	if c.state == Playing {
		return
	}
	c.state = Playing
	c.syncControls()
	c.log.Debug("animation", zap.Stringer("state", c.state))
	c.onFrame(time.Time{})
}

func (c *Controller) pause() {
	if c.state == Paused {
		return
	}
	c.sched.CancelFrame(c.frame)
	c.frame = 0
	c.state = Paused
	c.syncControls()
	c.log.Debug("animation", zap.Stringer("state", c.state))
}

func (c *Controller) onFrame(time.Time) {
	c.frame = 0
	c.step()
	c.frame = c.sched.RequestFrame(c.onFrame)
}

func (c *Controller) step() {
	c.sim.Step()
	c.generation++
	c.Render()
}

func (c *Controller) syncControls() {
	if c.state == Playing {
		c.panel.PlayPause.SetLabel(ui.PauseGlyph)
		c.panel.Step.SetDisabled(true)
		return
	}
	c.panel.PlayPause.SetLabel(ui.PlayGlyph)
	c.panel.Step.SetDisabled(false)
}
