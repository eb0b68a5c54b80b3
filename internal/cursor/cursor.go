// Package cursor draws the custom pointer: a dot that tracks the pointer
// exactly and an outline ring that eases after it.
package cursor

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/hero-particles/internal/config"
)

var (
	dotColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dotHoverColor = color.NRGBA{R: config.ParticleR, G: config.ParticleG, B: config.ParticleB, A: 255}
	outlineColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
)

type Cursor struct {
	DotX, DotY         float64
	OutlineX, OutlineY float64
	Scale              float64

	follow   float32
	tweenX   *gween.Tween
	tweenY   *gween.Tween
	scaleTw  *gween.Tween
	hovering bool
}

// New creates a cursor whose outline needs follow seconds to reach a new
// pointer position.
func New(follow float32) *Cursor {
	return &Cursor{Scale: 1, follow: follow}
}

// MoveTo places the dot at (x, y) and restarts the outline tween from where
// the outline currently is. The outline stays at the last target once done.
func (c *Cursor) MoveTo(x, y float64) {
	c.DotX, c.DotY = x, y
	if c.follow <= 0 {
		c.OutlineX, c.OutlineY = x, y
		c.tweenX, c.tweenY = nil, nil
		return
	}
	c.tweenX = gween.New(float32(c.OutlineX), float32(x), c.follow, ease.Linear)
	c.tweenY = gween.New(float32(c.OutlineY), float32(y), c.follow, ease.Linear)
}

// SetHover grows the outline while the pointer is over an interactive element.
func (c *Cursor) SetHover(on bool) {
	if on == c.hovering {
		return
	}
	c.hovering = on
	target := 1.0
	if on {
		target = config.CursorHoverScale
	}
	c.scaleTw = gween.New(float32(c.Scale), float32(target), config.CursorScaleSeconds, ease.OutQuad)
}

func (c *Cursor) Hovering() bool { return c.hovering }

// Update advances the outline and scale tweens by dt seconds.
func (c *Cursor) Update(dt float32) {
	if c.tweenX != nil {
		x, doneX := c.tweenX.Update(dt)
		y, doneY := c.tweenY.Update(dt)
		c.OutlineX, c.OutlineY = float64(x), float64(y)
		if doneX && doneY {
			c.tweenX, c.tweenY = nil, nil
		}
	}
	if c.scaleTw != nil {
		s, done := c.scaleTw.Update(dt)
		c.Scale = float64(s)
		if done {
			c.scaleTw = nil
		}
	}
}

func (c *Cursor) Draw(dst *ebiten.Image) {
	r := float32(config.CursorOutlineRadius * c.Scale)
	vector.StrokeCircle(dst, float32(c.OutlineX), float32(c.OutlineY), r, config.CursorOutlineStroke, outlineColor, true)

	clr := dotColor
	if c.hovering {
		clr = dotHoverColor
	}
	vector.DrawFilledCircle(dst, float32(c.DotX), float32(c.DotY), config.CursorDotRadius, clr, true)
}
