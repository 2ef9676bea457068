// Package controller owns the interactive state around a simulation handle:
// the animation loop, debounced dimension edits, pointer toggles and
// rendering into a raster canvas.
package controller

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"lifeboard/internal/core"
	"lifeboard/internal/debounce"
	"lifeboard/internal/input"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
)

// Scheduler delivers frame callbacks and one-shot timers on the host's UI
// goroutine. core.Loop satisfies it.
type Scheduler interface {
	debounce.Scheduler
	RequestFrame(fn func(now time.Time)) core.FrameID
	CancelFrame(id core.FrameID)
	FramePending(id core.FrameID) bool
}

// Options tunes a Controller. Zero values select the defaults.
type Options struct {
	CellSize int
	Palette  *render.Palette
	Debounce time.Duration
	Logger   *zap.Logger
}

// Stats summarises the board for status displays.
type Stats struct {
	Generation uint64
	Population int
	Size       core.Size
}

// Controller is the single context object every UI handler works through.
// It is not safe for concurrent use; hosts call it from their UI goroutine.
type Controller struct {
	sim      core.Sim
	sched    Scheduler
	renderer *render.Renderer
	canvas   *render.Canvas
	panel    *ui.Panel
	edits    *debounce.Coordinator[input.Field]
	log      *zap.Logger

	state      State
	frame      core.FrameID
	resume     map[input.Field]bool
	deferred   bool
	generation uint64
}

// New wires a controller around sim. The panel's fields are filled with the
// handle's dimensions and the board is painted once. The controller starts
// paused.
func New(sim core.Sim, sched Scheduler, panel *ui.Panel, opts Options) *Controller {
	palette := render.DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if panel == nil {
		panel = ui.NewPanel(0)
	}
	c := &Controller{
		sim:      sim,
		sched:    sched,
		renderer: render.NewRenderer(opts.CellSize, palette),
		panel:    panel,
		edits:    debounce.New[input.Field](sched, opts.Debounce),
		log:      logger.With(zap.String("engine", sim.Name())),
		state:    Paused,
		resume:   make(map[input.Field]bool),
	}
	c.canvas = render.NewCanvas(c.SurfaceSize())
	size := sim.Size()
	panel.Width.SetValue(strconv.Itoa(size.W))
	panel.Height.SetValue(strconv.Itoa(size.H))
	c.syncControls()
	c.Render()
	return c
}

// Sim returns the simulation handle.
func (c *Controller) Sim() core.Sim { return c.sim }

// Canvas returns the raster surface the controller paints into.
func (c *Controller) Canvas() *render.Canvas { return c.canvas }

// Panel returns the widget state.
func (c *Controller) Panel() *ui.Panel { return c.panel }

// SurfaceSize returns the raster dimensions for the handle's current size.
func (c *Controller) SurfaceSize() (int, int) {
	return c.renderer.SurfaceSize(c.sim.Size())
}

// Stats reports the generation count and live population.
func (c *Controller) Stats() Stats {
	return Stats{
		Generation: c.generation,
		Population: core.Population(c.sim.Cells()),
		Size:       c.sim.Size(),
	}
}

// Render paints the grid and then the cells.
func (c *Controller) Render() {
	size := c.sim.Size()
	c.renderer.DrawGrid(c.canvas, size)
	if err := c.renderer.DrawCells(c.canvas, size, c.sim.Cells()); err != nil {
		c.log.Warn("skipping cell draw",
			zap.Error(err),
			zap.Int("cells", len(c.sim.Cells())),
			zap.Int("want", size.Cells()),
		)
	}
}

// Click toggles the cell under the client point and repaints immediately,
// whether or not the animation is running. It reports the toggled cell.
func (c *Controller) Click(clientX, clientY float64, bounds input.Bounds) (row, col int, ok bool) {
	w, h := c.canvas.Size()
	row, col, ok = input.CellAt(clientX, clientY, bounds, w, h, c.renderer.CellSize(), c.sim.Size())
	if !ok {
		return 0, 0, false
	}
	c.sim.Toggle(row, col)
	c.Render()
	return row, col, true
}

// Reset reseeds the board, restarts the generation count and repaints.
func (c *Controller) Reset(seed int64) {
	c.sim.Reset(seed)
	c.generation = 0
	c.Render()
	c.log.Info("board reset", zap.Int64("seed", seed))
}

// DimensionKeyUp handles a key release in a dimension field. When the text
// parses the animation is paused before anything else happens. Either way
// the field's quiet period restarts.
func (c *Controller) DimensionKeyUp(f input.Field) {
	if _, ok := input.ParseDimension(c.panel.Field(f).Value()); ok {
		if c.state == Playing {
			c.resume[f] = true
		}
		c.pause()
	}
	c.edits.Schedule(f, func() { c.applyDimension(f) })
}

// dropResume forgets every resume intent. resume holds, per field, that an
// edit paused a playing board; deferred carries an applied field's intent
// until the other field settles.
func (c *Controller) dropResume() {
	clear(c.resume)
	c.deferred = false
}

// ResizePending reports whether f has an edit waiting for its quiet period.
func (c *Controller) ResizePending(f input.Field) bool { return c.edits.Pending(f) }

// Close disarms pending edits and stops the animation.
func (c *Controller) Close() {
	c.edits.CancelAll()
	c.dropResume()
	c.pause()
}

func (c *Controller) applyDimension(f input.Field) {
	field := c.panel.Field(f)
	value, ok := input.ParseDimension(field.Value())
	if !ok {
		delete(c.resume, f)
		c.log.Debug("dimension edit abandoned", zap.Stringer("field", f), zap.String("text", field.Value()))
		if c.deferred && !c.edits.PendingOther(f) {
			c.deferred = false
			c.play()
		}
		return
	}

	resume := c.resume[f] || c.deferred || c.state == Playing
	delete(c.resume, f)
	c.deferred = false
	c.pause()

	switch f {
	case input.FieldWidth:
		c.sim.SetWidth(value)
	case input.FieldHeight:
		c.sim.SetHeight(value)
	}
	size := c.sim.Size()
	c.canvas.Resize(c.SurfaceSize())
	if f == input.FieldWidth {
		field.SetValue(strconv.Itoa(size.W))
	} else {
		field.SetValue(strconv.Itoa(size.H))
	}
	c.Render()

	w, h := c.canvas.Size()
	c.log.Info("board resized",
		zap.Stringer("field", f),
		zap.Int("requested", value),
		zap.Int("width", size.W),
		zap.Int("height", size.H),
		zap.Int("surface_w", w),
		zap.Int("surface_h", h),
	)

	if c.edits.PendingOther(f) {
		c.deferred = resume
		return
	}
	if resume {
		c.play()
	}
}
