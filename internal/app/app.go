//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"lifeboard/internal/controller"
	"lifeboard/internal/core"
	"lifeboard/internal/input"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
)

const (
	// PanelWidth is the width of the control column right of the board.
	PanelWidth = 180
	// MinHeight keeps the controls visible on short boards.
	MinHeight = 300
)

// Game adapts a controller to the ebiten.Game interface.
type Game struct {
	ctrl    *controller.Controller
	loop    *core.Loop
	painter *render.SurfacePainter
	hud     *ui.HUD
	log     *zap.Logger

	scale int
	seed  int64

	winW, winH int
}

// New constructs a Game around ctrl. The loop must be the scheduler the
// controller was built with.
func New(ctrl *controller.Controller, loop *core.Loop, scale int, seed int64, logger *zap.Logger) *Game {
	if scale < 1 {
		scale = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		ctrl:    ctrl,
		loop:    loop,
		painter: render.NewSurfacePainter(),
		hud:     ui.NewHUD(ctrl.Panel(), ctrl.Sim().Name()),
		log:     logger,
		scale:   scale,
		seed:    seed,
	}
}

// WindowSize returns the outer window size for the current board.
func (g *Game) WindowSize() (int, int) {
	w, h := g.boardSize()
	if h < MinHeight {
		h = MinHeight
	}
	return w + PanelWidth, h
}

func (g *Game) boardSize() (int, int) {
	w, h := g.ctrl.Canvas().Size()
	return w * g.scale, h * g.scale
}

func (g *Game) boardBounds() input.Bounds {
	w, h := g.boardSize()
	return input.Bounds{Width: float64(w), Height: float64(h)}
}

// Update handles input and pumps the controller's loop.
func (g *Game) Update() error {
	boardW, _ := g.boardSize()
	typing := g.hud.Update(boardW, g.ctrl)

	if !typing {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.ctrl.TogglePlay()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.ctrl.AdvanceOne()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.ctrl.Reset(g.seed)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.seed = time.Now().UnixNano()
			g.ctrl.Reset(g.seed)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		bounds := g.boardBounds()
		if bounds.Contains(float64(mx), float64(my)) {
			g.ctrl.Click(float64(mx), float64(my), bounds)
		}
	}

	g.loop.Pump(time.Now())

	if w, h := g.WindowSize(); w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		ebiten.SetWindowSize(w, h)
		g.log.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
	}
	return nil
}

// Draw renders the board and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.ctrl.Canvas(), 0, 0, g.scale)
	boardW, _ := g.boardSize()
	_, h := g.WindowSize()
	g.hud.Draw(screen, boardW, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
