package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/hero-particles/internal/audio"
	"github.com/iburimskiy/hero-particles/internal/config"
	"github.com/iburimskiy/hero-particles/internal/cursor"
	"github.com/iburimskiy/hero-particles/internal/field"
	"github.com/iburimskiy/hero-particles/internal/page"
)

var background = color.RGBA{R: config.BackgroundR, G: config.BackgroundG, B: config.BackgroundB, A: 255}

// Game hosts the particle field, page content and custom cursor in the ebiten loop.
type Game struct {
	field  *field.Field
	page   *page.Page
	cursor *cursor.Cursor
	sound  *audio.Player

	width, height int
	lastX, lastY  int
	hovered       *page.Element
	showStats     bool
	started       time.Time
}

// NewGame builds the scene for an initial width x height viewport. sound may
// be nil.
func NewGame(width, height int, sound *audio.Player) *Game {
	g := &Game{
		field:   field.New(width, height),
		page:    page.New(page.DefaultContent),
		cursor:  cursor.New(config.CursorFollowSeconds),
		sound:   sound,
		width:   width,
		height:  height,
		lastX:   -1,
		lastY:   -1,
		started: time.Now(),
	}
	g.page.Resize(width, height)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showStats = !g.showStats
	}

	mx, my := ebiten.CursorPosition()
	if mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY = mx, my
		g.field.Pointer().Set(float64(mx), float64(my))
		g.cursor.MoveTo(float64(mx), float64(my))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.page.ScrollBy(-wy * config.ScrollStep)
	}

	g.setHovered(g.page.ElementAt(float64(mx), float64(my)))

	dt := float32(1.0 / float64(ebiten.TPS()))
	g.cursor.Update(dt)
	g.page.Update(dt)
	g.field.Step()
	return nil
}

// setHovered drives the enter/leave transitions of the hover affordance.
func (g *Game) setHovered(e *page.Element) {
	if e == g.hovered {
		return
	}
	if e != nil && g.sound != nil {
		g.sound.PlayChime()
	}
	g.hovered = e
	g.cursor.SetHover(e != nil)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.field.Draw(screen)
	g.page.Draw(screen)
	g.cursor.Draw(screen)

	if g.showStats {
		stats := fmt.Sprintf("TPS %0.1f  FPS %0.1f  particles %d  %dx%d  up %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.field.Len(), g.width, g.height,
			formatDuration(time.Since(g.started)))
		ebitenutil.DebugPrintAt(screen, stats, 12, 12)
	}
}

// Layout follows the window size; every change regenerates the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if viewportChanged(g.width, g.height, outsideWidth, outsideHeight) {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(outsideWidth, outsideHeight)
		g.page.Resize(outsideWidth, outsideHeight)
		log.Printf("viewport resized to %dx%d, %d particles", outsideWidth, outsideHeight, g.field.Len())
	}
	return g.width, g.height
}
