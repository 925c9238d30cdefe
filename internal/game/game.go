// Package game is the ebiten front end of the dot machine: it lays out the
// row of places, maps clicks and keys to board requests and draws the
// result.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/iburimskiy/exploding-dots/internal/config"
	"github.com/iburimskiy/exploding-dots/internal/controls"
	"github.com/iburimskiy/exploding-dots/internal/dots"
	"github.com/iburimskiy/exploding-dots/internal/layout"
	"github.com/iburimskiy/exploding-dots/internal/sound"
)

// Debug font glyph size used by ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	cellColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	hoverColor   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	borderColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	dotColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	antidotColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	labelColor   = color.RGBA{R: 50, G: 0, B: 200, A: 255}
)

type button struct {
	rect   layout.Rect
	text   string
	action controls.Action
}

// Game implements ebiten.Game.
type Game struct {
	cfg      *config.Config
	ctrl     *controls.Controller
	player   sound.Player
	prompter Prompter
	logger   *zap.Logger

	row     layout.Row
	buttons []button
	flashes []flash
	history *history

	// input state
	hoveredCell   int
	hoveredButton int

	time    float64
	lastErr error
}

func New(cfg *config.Config, ctrl *controls.Controller, player sound.Player, prompter Prompter, logger *zap.Logger) *Game {
	n := ctrl.Board().Len()
	row := layout.NewRow(n, cfg.WindowWidth, cfg.StartY, cfg.CellWidth, cfg.CellHeight)
	g := &Game{
		cfg:           cfg,
		ctrl:          ctrl,
		player:        player,
		prompter:      prompter,
		logger:        logger,
		row:           row,
		flashes:       make([]flash, n),
		history:       newHistory(cfg.HistorySize),
		hoveredCell:   layout.NoPlace,
		hoveredButton: -1,
	}
	texts := []struct {
		text   string
		action controls.Action
	}{
		{"Explode", controls.Explode},
		{"Reset", controls.Reset},
		{"Load", controls.Load},
	}
	rects := layout.Buttons(row, len(texts), config.ButtonWidth, config.ButtonHeight, config.ButtonGap)
	for i, t := range texts {
		g.buttons = append(g.buttons, button{rect: rects[i], text: t.text, action: t.action})
	}
	return g
}

// labelRect is where the machine name sits; it grows with the base's digits.
func (g *Game) labelRect() layout.Rect {
	text := dots.MachineName(g.ctrl.Board().Base())
	return layout.MachineLabel(g.cfg.WindowWidth, g.cfg.WindowHeight, len(text)*glyphWidth, glyphHeight)
}

func (g *Game) buttonAt(x, y int) int {
	for i, b := range g.buttons {
		if b.rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// requestFor maps a mouse click at (x, y) to a board request. Cells take
// left = add, right = remove, middle = unexplode; the machine label takes
// left = base up, right = base down.
func (g *Game) requestFor(btn ebiten.MouseButton, x, y int) controls.Request {
	if cell := g.row.CellAt(x, y); cell != layout.NoPlace {
		switch btn {
		case ebiten.MouseButtonLeft:
			return controls.Request{Action: controls.AddDot, Place: cell}
		case ebiten.MouseButtonRight:
			return controls.Request{Action: controls.RemoveDot, Place: cell}
		case ebiten.MouseButtonMiddle:
			return controls.Request{Action: controls.Unexplode, Place: cell}
		}
		return controls.Request{}
	}
	if g.labelRect().Contains(x, y) {
		switch btn {
		case ebiten.MouseButtonLeft:
			return controls.Request{Action: controls.BaseUp}
		case ebiten.MouseButtonRight:
			return controls.Request{Action: controls.BaseDown}
		}
		return controls.Request{}
	}
	if i := g.buttonAt(x, y); i >= 0 && btn == ebiten.MouseButtonLeft {
		return controls.Request{Action: g.buttons[i].action}
	}
	return controls.Request{}
}

// requestForKey maps keyboard shortcuts to board requests.
func requestForKey(k ebiten.Key) controls.Request {
	switch k {
	case ebiten.KeyE:
		return controls.Request{Action: controls.Explode}
	case ebiten.KeyR:
		return controls.Request{Action: controls.Reset}
	case ebiten.KeyL:
		return controls.Request{Action: controls.Load}
	}
	return controls.Request{}
}

// handle runs req against the board and feeds the outcome to the flash,
// history and sound layers.
func (g *Game) handle(req controls.Request) {
	if req.Action == controls.None {
		return
	}
	if req.Action == controls.Load {
		v, ok, err := g.prompter.AskValue()
		if err != nil {
			g.lastErr = err
			g.logger.Warn("load dialog", zap.Error(err))
			g.prompter.ShowError(err.Error())
			return
		}
		if !ok {
			return
		}
		req.Value = v
	}

	out, err := g.ctrl.Apply(req)
	if err != nil {
		g.lastErr = err
		// An unexplode on the rightmost place is an ordinary miss.
		if !errors.Is(err, dots.ErrNoPlaceRight) {
			g.logger.Warn("request failed", zap.Stringer("action", req.Action), zap.Error(err))
		}
		return
	}
	g.lastErr = nil

	if req.Action == controls.Reset || req.Action == controls.Load {
		g.history.clear()
	}
	if len(out.Explosions) == 0 {
		return
	}
	base := g.ctrl.Board().Base()
	for _, e := range out.Explosions {
		g.flashes[e.Place].start(config.FlashDuration, e.Sign)
		g.flashes[e.Place-1].start(config.FlashDuration, e.Sign)
	}
	g.history.record(out.Explosions, base)
	g.player.Pop(out.Explosions)
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	g.hoveredCell = g.row.CellAt(mouseX, mouseY)
	g.hoveredButton = g.buttonAt(mouseX, mouseY)

	for _, btn := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(btn) {
			g.handle(g.requestFor(btn, mouseX, mouseY))
		}
	}

	for _, k := range []ebiten.Key{ebiten.KeyE, ebiten.KeyR, ebiten.KeyL} {
		if inpututil.IsKeyJustPressed(k) {
			g.handle(requestForKey(k))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.player.SetEnabled(!g.player.Enabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.ctrl.SetAutoExplode(!g.ctrl.AutoExplode())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.time += dt
	for i := range g.flashes {
		g.flashes[i].update(float32(dt))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawCells(screen)
	g.drawLabel(screen)
	g.drawButtons(screen)

	board := g.ctrl.Board()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Value: %d", board.Value()),
		int(float64(g.cfg.WindowWidth)/2.5), int(float64(g.cfg.WindowHeight)/2.5))
	g.drawHistory(screen)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

// status is the help line, with the last error appended.
func (g *Game) status() string {
	status := "Left: add dot  Right: remove  Middle: unexplode  E: explode  R: reset  L: load"
	if !g.ctrl.AutoExplode() {
		status += "  [manual]"
	}
	if !g.player.Enabled() {
		status += "  [muted]"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slow vertical gradient, drawn in 4px bands
	h := g.cfg.WindowHeight
	for y := 0; y < h; y += 4 {
		ratio := float64(y) / float64(h)
		hue := 200 + 40*ratio + 10*math.Sin(g.time*0.2)
		r, gv, b := hsvToRgb(hue, 0.15, 0.95-0.1*ratio)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.cfg.WindowWidth), 4, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawCells(screen *ebiten.Image) {
	board := g.ctrl.Board()
	for i, c := range g.row.Cells {
		bg := cellColor
		if i == g.hoveredCell {
			bg = hoverColor
		}
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), bg, false)

		if f := g.flashes[i]; f.active() {
			hue := 60.0
			if f.sign < 0 {
				hue = 0
			}
			r, gv, b := hsvToRgb(hue, 0.8, 1)
			a := uint8(clamp01(float64(f.alpha)) * 160)
			vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), color.RGBA{R: r, G: gv, B: b, A: a}, false)
		}
		vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), 2, borderColor, false)

		g.drawDots(screen, c, board.At(i))
	}
}

// drawDots draws a cell's dots, or its count when they would not fit.
func (g *Game) drawDots(screen *ebiten.Image, cell layout.Rect, count int) {
	if count == 0 {
		return
	}
	clr := dotColor
	if count < 0 {
		clr = antidotColor
	}
	perCell := config.DotsPerRow * config.DotsPerRow
	if count > perCell || -count > perCell {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", count), cell.X+cell.W/4, cell.Y+cell.H/2-glyphHeight/2)
		return
	}
	for _, p := range layout.DotCenters(cell, count, config.DotsPerRow, config.DotStep) {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.DotRadius, clr, true)
	}
}

func (g *Game) drawLabel(screen *ebiten.Image) {
	r := g.labelRect()
	vector.DrawFilledRect(screen, float32(r.X-4), float32(r.Y-2), float32(r.W+8), float32(r.H+4), color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
	vector.StrokeRect(screen, float32(r.X-4), float32(r.Y-2), float32(r.W+8), float32(r.H+4), 2, labelColor, false)
	ebitenutil.DebugPrintAt(screen, dots.MachineName(g.ctrl.Board().Base()), r.X, r.Y)
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	for i, b := range g.buttons {
		// Button background
		var bgColor color.Color
		if i == g.hoveredButton {
			bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
		} else {
			bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
		}
		r := b.rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bgColor, false)

		// Button border
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

		// Button text
		textX := r.X + (r.W-len(b.text)*glyphWidth)/2
		textY := r.Y + (r.H-glyphHeight)/2
		ebitenutil.DebugPrintAt(screen, b.text, textX, textY)
	}
}

func (g *Game) drawHistory(screen *ebiten.Image) {
	lines := g.history.snapshot(g.cfg.HistorySize)
	y := g.cfg.WindowHeight - (len(lines)+1)*glyphHeight - 12
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 12, y)
		y += glyphHeight
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
