// Package tui hosts the controller in a terminal. The board is drawn from
// the same raster canvas as the window host, two pixel rows per terminal
// row, and mouse clicks go through the same pointer mapping.
package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"lifeboard/internal/controller"
	"lifeboard/internal/core"
	"lifeboard/internal/input"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(8)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Width(7)
	focusStyle   = fieldStyle.Background(lipgloss.Color("25"))
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1)
	disabledBtn  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("235")).Padding(0, 1)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sideStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

const (
	// boardTop is the terminal row the board starts on, below the title.
	boardTop        = 1
	tickInterval    = 16 * time.Millisecond
	historyCapacity = 120
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model wrapping a controller.
type Model struct {
	ctrl *controller.Controller
	loop *core.Loop
	log  *zap.Logger
	seed int64

	history []float64
	lastGen uint64
	styles  map[[2]uint32]lipgloss.Style

	width, height int
}

// New returns a model driving ctrl. The loop must be the scheduler the
// controller was built with.
func New(ctrl *controller.Controller, loop *core.Loop, seed int64, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		ctrl:    ctrl,
		loop:    loop,
		log:     logger,
		seed:    seed,
		history: make([]float64, 0, historyCapacity),
		styles:  map[[2]uint32]lipgloss.Style{},
		width:   80,
		height:  24,
	}
	m.record()
	return m
}

// Run starts a full-screen program for the model.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		m.loop.Pump(time.Time(msg))
		m.record()
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	panel := m.ctrl.Panel()
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if key == "tab" {
		panel.CycleFocus()
		return nil
	}
	if _, ok := panel.FocusedField(); ok {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			panel.Blur()
		case tea.KeyBackspace:
			panel.Backspace(m.ctrl)
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				panel.TypeRune(r, m.ctrl)
			}
		}
		return nil
	}

	switch key {
	case "q", "esc":
		return tea.Quit
	case " ":
		m.ctrl.TogglePlay()
	case "n":
		m.ctrl.AdvanceOne()
	case "r":
		m.ctrl.Reset(m.seed)
		m.resetHistory()
	case "s":
		m.seed = time.Now().UnixNano()
		m.ctrl.Reset(m.seed)
		m.resetHistory()
	case "w":
		panel.Focus(input.FieldWidth)
	case "h":
		panel.Focus(input.FieldHeight)
	}
	return nil
}

// Bounds returns the on-screen rectangle of the board in terminal cells.
// Each cell is one pixel wide and two pixels tall.
func (m *Model) Bounds() input.Bounds {
	w, h := m.ctrl.Canvas().Size()
	return input.Bounds{Left: 0, Top: boardTop, Width: float64(w), Height: float64(h) / 2}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	x, y := float64(msg.X), float64(msg.Y)
	b := m.Bounds()
	if !b.Contains(x, y) {
		m.ctrl.Panel().Blur()
		return
	}
	row, col, ok := m.ctrl.Click(x, y, b)
	if ok {
		m.log.Debug("cell toggled", zap.Int("row", row), zap.Int("col", col))
	}
}

func (m *Model) record() {
	st := m.ctrl.Stats()
	if len(m.history) > 0 && st.Generation == m.lastGen {
		m.history[len(m.history)-1] = float64(st.Population)
		return
	}
	m.lastGen = st.Generation
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, float64(st.Population))
}

func (m *Model) resetHistory() {
	m.history = m.history[:0]
	m.record()
}

func (m *Model) View() string {
	st := m.ctrl.Stats()
	state := ui.PlayGlyph
	if !m.ctrl.IsPaused() {
		state = ui.PauseGlyph
	}
	title := titleStyle.Render(fmt.Sprintf("lifeboard · %s", m.ctrl.Sim().Name())) +
		dimStyle.Render(fmt.Sprintf("  %dx%d  %s", st.Size.W, st.Size.H, state))

	board := m.renderBoard(m.ctrl.Canvas())
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, sideStyle.Render(m.renderSide(st)))
	return title + "\n" + body
}

func (m *Model) renderSide(st controller.Stats) string {
	panel := m.ctrl.Panel()
	var s strings.Builder

	for _, f := range input.Fields {
		tf := panel.Field(f)
		style := fieldStyle
		text := tf.Value()
		if tf.Focused {
			style = focusStyle
			text += "_"
		}
		line := labelStyle.Render(tf.Label) + style.Render(text)
		if m.ctrl.ResizePending(f) {
			line += pendingStyle.Render(" …")
		}
		s.WriteString(line + "\n")
	}
	s.WriteString("\n")
	s.WriteString(renderButton(&panel.PlayPause) + " " + renderButton(&panel.Step) + "\n\n")

	s.WriteString(labelStyle.Render("Gen") + valueStyle.Render(fmt.Sprint(st.Generation)) + "\n")
	s.WriteString(labelStyle.Render("Alive") + valueStyle.Render(fmt.Sprint(st.Population)) + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("population"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(dimStyle.Render("space play/pause · n step · r reset\ns reseed · w/h/tab edit size · q quit"))
	return s.String()
}

func renderButton(b *ui.Button) string {
	if b.Disabled {
		return disabledBtn.Render(b.Label)
	}
	return buttonStyle.Render(b.Label)
}

// renderBoard draws the canvas with upper half blocks: the foreground is the
// even pixel row and the background the odd one. Runs of identical pairs
// share one styled span.
func (m *Model) renderBoard(c *render.Canvas) string {
	w, h := c.Size()
	var out strings.Builder
	for y := 0; y < h; y += 2 {
		runStart := 0
		var runKey [2]uint32
		for x := 0; x <= w; x++ {
			var key [2]uint32
			if x < w {
				top := c.RGBAAt(x, y)
				bottom := top
				if y+1 < h {
					bottom = c.RGBAAt(x, y+1)
				}
				key = [2]uint32{packRGBA(top), packRGBA(bottom)}
			}
			if x == 0 {
				runKey = key
				continue
			}
			if x < w && key == runKey {
				continue
			}
			out.WriteString(m.style(runKey).Render(strings.Repeat("▀", x-runStart)))
			runStart, runKey = x, key
		}
		if y+2 < h {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (m *Model) style(key [2]uint32) lipgloss.Style {
	if s, ok := m.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexOf(key[0]))).
		Background(lipgloss.Color(hexOf(key[1])))
	m.styles[key] = s
	return s
}

func packRGBA(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func hexOf(packed uint32) string {
	c := colorful.Color{
		R: float64(packed>>16&0xFF) / 255,
		G: float64(packed>>8&0xFF) / 255,
		B: float64(packed&0xFF) / 255,
	}
	return c.Hex()
}
