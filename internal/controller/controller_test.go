package controller_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lifeboard/internal/controller"
	"lifeboard/internal/core"
	"lifeboard/internal/input"
	"lifeboard/internal/render"
	"lifeboard/internal/sims/life"
	"lifeboard/internal/ui"
)

// countingSim records every resize request on top of a real board.
type countingSim struct {
	*life.Life
	widths  []int
	heights []int
}

func (s *countingSim) SetWidth(w int) {
	s.widths = append(s.widths, w)
	s.Life.SetWidth(w)
}

func (s *countingSim) SetHeight(h int) {
	s.heights = append(s.heights, h)
	s.Life.SetHeight(h)
}

// shortSim hands out a cell view one byte too short.
type shortSim struct{ *life.Life }

func (s shortSim) Cells() []uint8 {
	cells := s.Life.Cells()
	return cells[:len(cells)-1]
}

var _ = Describe("Controller", func() {
	const quiet = 500 * time.Millisecond

	var (
		sim   *countingSim
		loop  *core.Loop
		panel *ui.Panel
		ctrl  *controller.Controller
		now   time.Time
	)

	advance := func(d time.Duration) {
		now = now.Add(d)
		loop.Pump(now)
	}

	edit := func(f input.Field, text string) {
		panel.Field(f).SetValue(text)
		ctrl.DimensionKeyUp(f)
	}

	BeforeEach(func() {
		now = time.Unix(1_700_000_000, 0)
		sim = &countingSim{Life: life.New(64, 64)}
		loop = core.NewLoop(now, nil)
		panel = ui.NewPanel(180)
		ctrl = controller.New(sim, loop, panel, controller.Options{
			CellSize: 5,
			Debounce: quiet,
			Logger:   zap.NewNop(),
		})
	})

	Describe("construction", func() {
		It("sizes the surface from the handle", func() {
			w, h := ctrl.SurfaceSize()
			Expect(w).To(Equal(385))
			Expect(h).To(Equal(385))
			cw, ch := ctrl.Canvas().Size()
			Expect([]int{cw, ch}).To(Equal([]int{385, 385}))
		})

		It("mirrors the handle's dimensions into the fields", func() {
			Expect(panel.Width.Value()).To(Equal("64"))
			Expect(panel.Height.Value()).To(Equal("64"))
		})

		It("starts paused with the step control enabled", func() {
			Expect(ctrl.IsPaused()).To(BeTrue())
			Expect(ctrl.FramePending()).To(BeFalse())
			Expect(panel.PlayPause.Label).To(Equal(ui.PlayGlyph))
			Expect(panel.Step.Disabled).To(BeFalse())
		})

		It("paints the initial board", func() {
			p := render.DefaultPalette()
			Expect(ctrl.Canvas().RGBAAt(1, 0)).To(Equal(p.Grid))
			// cell 0 is alive in the default pattern, cell 1 is dead
			Expect(ctrl.Canvas().RGBAAt(1, 1)).To(Equal(p.Alive))
			Expect(ctrl.Canvas().RGBAAt(7, 1)).To(Equal(p.Dead))
		})
	})

	Describe("play and pause", func() {
		It("runs one frame immediately and requests the next", func() {
			ctrl.Play()
			Expect(ctrl.State()).To(Equal(controller.Playing))
			Expect(ctrl.Stats().Generation).To(BeEquivalentTo(1))
			Expect(ctrl.FramePending()).To(BeTrue())
			Expect(panel.PlayPause.Label).To(Equal(ui.PauseGlyph))
			Expect(panel.Step.Disabled).To(BeTrue())

			advance(16 * time.Millisecond)
			advance(16 * time.Millisecond)
			Expect(ctrl.Stats().Generation).To(BeEquivalentTo(3))
		})

		It("cancels the outstanding frame before returning", func() {
			ctrl.Play()
			ctrl.Pause()
			Expect(ctrl.IsPaused()).To(BeTrue())
			Expect(ctrl.FramePending()).To(BeFalse())
			Expect(loop.PendingFrames()).To(BeZero())

			advance(time.Second)
			Expect(ctrl.Stats().Generation).To(BeEquivalentTo(1))
			Expect(panel.PlayPause.Label).To(Equal(ui.PlayGlyph))
			Expect(panel.Step.Disabled).To(BeFalse())
		})

		It("toggles through the play control", func() {
			panel.Click(panel.PlayPause.Rect.Min.X+1, panel.PlayPause.Rect.Min.Y+1, ctrl)
			Expect(ctrl.IsPaused()).To(BeFalse())
			panel.Click(panel.PlayPause.Rect.Min.X+1, panel.PlayPause.Rect.Min.Y+1, ctrl)
			Expect(ctrl.IsPaused()).To(BeTrue())
		})

		It("ignores a second play", func() {
			ctrl.Play()
			ctrl.Play()
			Expect(ctrl.Stats().Generation).To(BeEquivalentTo(1))
			Expect(loop.PendingFrames()).To(Equal(1))
		})

		It("keeps the paused predicate in agreement with the frame request", func() {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 500; i++ {
				switch rng.Intn(6) {
				case 0:
					ctrl.TogglePlay()
				case 1:
					ctrl.AdvanceOne()
				case 2:
					edit(input.FieldWidth, []string{"12", "", "x", "40"}[rng.Intn(4)])
				case 3:
					edit(input.FieldHeight, []string{"9", "", "30"}[rng.Intn(3)])
				case 4:
					ctrl.Click(float64(rng.Intn(400)), float64(rng.Intn(400)), input.Bounds{Width: 385, Height: 385})
				default:
					advance(time.Duration(rng.Intn(700)) * time.Millisecond)
				}
				Expect(ctrl.IsPaused()).To(Equal(!ctrl.FramePending()), "step %d", i)
			}
		})
	})

	Describe("single step", func() {
		It("advances exactly one generation while paused", func() {
			ctrl.AdvanceOne()
			Expect(ctrl.Stats().Generation).To(BeEquivalentTo(1))
			Expect(ctrl.IsPaused()).To(BeTrue())
			Expect(loop.PendingFrames()).To(BeZero())
		})

		It("is inert while playing", func() {
			ctrl.Play()
			before := ctrl.Stats().Generation
			ctrl.AdvanceOne()
			panel.Click(panel.Step.Rect.Min.X+1, panel.Step.Rect.Min.Y+1, ctrl)
			Expect(ctrl.Stats().Generation).To(Equal(before))
			Expect(ctrl.IsPaused()).To(BeFalse())
		})
	})

	Describe("pointer clicks", func() {
		It("toggles the cell under an unscaled click and repaints", func() {
			idx := 1*64 + 1
			Expect(sim.Cells()[idx]).To(BeZero())

			row, col, ok := ctrl.Click(7, 7, input.Bounds{Width: 385, Height: 385})
			Expect(ok).To(BeTrue())
			Expect([]int{row, col}).To(Equal([]int{1, 1}))
			Expect(sim.Cells()[idx]).NotTo(BeZero())
			Expect(ctrl.Canvas().RGBAAt(7, 7)).To(Equal(render.DefaultPalette().Alive))
			Expect(ctrl.Stats().Generation).To(BeZero())
		})

		It("restores the cell on a second click", func() {
			before := append([]uint8(nil), sim.Cells()...)
			b := input.Bounds{Left: 10, Top: 20, Width: 192.5, Height: 192.5}
			ctrl.Click(10+50, 20+80, b)
			ctrl.Click(10+50, 20+80, b)
			Expect(sim.Cells()).To(Equal(before))
		})

		It("clamps clicks past the last cell", func() {
			row, col, ok := ctrl.Click(384, 384, input.Bounds{Width: 385, Height: 385})
			Expect(ok).To(BeTrue())
			Expect([]int{row, col}).To(Equal([]int{63, 63}))
		})
	})

	Describe("dimension edits", func() {
		It("applies width 32 after the quiet period and resumes", func() {
			ctrl.Play()
			edit(input.FieldWidth, "32")
			Expect(ctrl.IsPaused()).To(BeTrue())
			Expect(ctrl.FramePending()).To(BeFalse())

			advance(quiet - time.Millisecond)
			Expect(sim.Size().W).To(Equal(64))
			Expect(ctrl.IsPaused()).To(BeTrue())

			advance(time.Millisecond)
			Expect(sim.Size()).To(Equal(core.Size{W: 32, H: 64}))
			w, h := ctrl.SurfaceSize()
			Expect(w).To(Equal(193))
			Expect(h).To(Equal(385))
			cw, _ := ctrl.Canvas().Size()
			Expect(cw).To(Equal(193))
			Expect(ctrl.IsPaused()).To(BeFalse())
			Expect(ctrl.FramePending()).To(BeTrue())
		})

		It("coalesces a burst into one change with the last value", func() {
			panel.Width.SetValue("")
			panel.Focus(input.FieldWidth)
			for _, r := range "128" {
				panel.TypeRune(r, ctrl)
				advance(100 * time.Millisecond)
			}
			advance(quiet - 150*time.Millisecond)
			Expect(sim.widths).To(BeEmpty())

			advance(100 * time.Millisecond)
			Expect(sim.widths).To(Equal([]int{128}))
			Expect(sim.Size().W).To(Equal(128))
		})

		It("leaves the controller paused when the field is cleared mid-window", func() {
			ctrl.Play()
			edit(input.FieldWidth, "32")
			Expect(ctrl.IsPaused()).To(BeTrue())

			advance(200 * time.Millisecond)
			edit(input.FieldWidth, "")
			Expect(ctrl.ResizePending(input.FieldWidth)).To(BeTrue())

			advance(2 * quiet)
			Expect(sim.widths).To(BeEmpty())
			Expect(sim.Size().W).To(Equal(64))
			Expect(ctrl.IsPaused()).To(BeTrue())
			Expect(ctrl.ResizePending(input.FieldWidth)).To(BeFalse())
		})

		It("does not pause for text that does not parse", func() {
			ctrl.Play()
			edit(input.FieldHeight, "4a")
			Expect(ctrl.IsPaused()).To(BeFalse())
			Expect(ctrl.ResizePending(input.FieldHeight)).To(BeTrue())
		})

		It("stays paused when it was paused before the edit", func() {
			edit(input.FieldHeight, "16")
			advance(quiet)
			Expect(sim.Size().H).To(Equal(16))
			_, h := ctrl.SurfaceSize()
			Expect(h).To(Equal(97))
			Expect(ctrl.IsPaused()).To(BeTrue())
		})

		It("keeps width and height windows independent", func() {
			ctrl.Play()
			edit(input.FieldWidth, "20")
			advance(300 * time.Millisecond)
			edit(input.FieldHeight, "10")

			advance(200 * time.Millisecond)
			Expect(sim.Size()).To(Equal(core.Size{W: 20, H: 64}))
			Expect(ctrl.IsPaused()).To(BeTrue())

			advance(300 * time.Millisecond)
			Expect(sim.Size()).To(Equal(core.Size{W: 20, H: 10}))
			Expect(ctrl.IsPaused()).To(BeFalse())
			Expect(sim.widths).To(Equal([]int{20}))
			Expect(sim.heights).To(Equal([]int{10}))
		})

		It("writes the normalized value back into the field", func() {
			edit(input.FieldWidth, "0")
			advance(quiet)
			Expect(sim.Size().W).To(Equal(1))
			Expect(panel.Width.Value()).To(Equal("1"))

			edit(input.FieldHeight, "99999")
			advance(quiet)
			Expect(sim.Size().H).To(Equal(core.MaxDimension))
			Expect(panel.Height.Value()).To(Equal("1024"))
		})

		It("resets cells to dead on resize", func() {
			edit(input.FieldWidth, "8")
			advance(quiet)
			Expect(ctrl.Stats().Population).To(BeZero())
		})

		It("resumes after a width resize when the height field was cleared meanwhile", func() {
			ctrl.Play()
			edit(input.FieldWidth, "20")
			advance(100 * time.Millisecond)
			edit(input.FieldHeight, "")

			advance(quiet - 100*time.Millisecond)
			Expect(sim.Size()).To(Equal(core.Size{W: 20, H: 64}))
			Expect(ctrl.IsPaused()).To(BeTrue())
			Expect(ctrl.ResizePending(input.FieldHeight)).To(BeTrue())

			advance(100 * time.Millisecond)
			Expect(ctrl.ResizePending(input.FieldHeight)).To(BeFalse())
			Expect(sim.Size()).To(Equal(core.Size{W: 20, H: 64}))
			Expect(ctrl.IsPaused()).To(BeFalse())
			Expect(ctrl.FramePending()).To(BeTrue())
		})

		It("drops the resume intent when the user pauses explicitly", func() {
			ctrl.Play()
			edit(input.FieldWidth, "30")
			ctrl.Play()
			ctrl.Pause()
			advance(quiet)
			Expect(sim.Size().W).To(Equal(30))
			Expect(ctrl.IsPaused()).To(BeTrue())
		})
	})

	Describe("rendering", func() {
		It("warns and skips the cells when the view length is wrong", func() {
			observed, logs := observer.New(zapcore.WarnLevel)
			short := shortSim{Life: life.New(4, 4)}
			c := controller.New(short, loop, nil, controller.Options{Logger: zap.New(observed)})
			Expect(logs.FilterMessage("skipping cell draw").Len()).To(Equal(1))

			p := render.DefaultPalette()
			Expect(c.Canvas().RGBAAt(1, 0)).To(Equal(p.Grid))
			Expect(c.Canvas().RGBAAt(2, 2)).NotTo(Equal(p.Alive))
		})
	})

	Describe("stats and reset", func() {
		It("counts live cells and generations", func() {
			Expect(ctrl.Stats().Population).To(Equal(core.Population(sim.Cells())))
			ctrl.AdvanceOne()
			ctrl.AdvanceOne()
			Expect(ctrl.Stats().Generation).To(BeEquivalentTo(2))

			ctrl.Reset(0)
			Expect(ctrl.Stats().Generation).To(BeZero())
			Expect(sim.Cells()[0]).NotTo(BeZero())
		})
	})

	It("disarms everything on close", func() {
		ctrl.Play()
		edit(input.FieldWidth, "10")
		ctrl.Close()
		advance(quiet)
		Expect(sim.widths).To(BeEmpty())
		Expect(ctrl.IsPaused()).To(BeTrue())
		Expect(loop.PendingTimers()).To(BeZero())
	})
})
