// Package page lays out the scrollable content drawn over the particle
// field: a viewport-tall hero followed by content sections, each with one
// interactive element. Sections fade in the first time they scroll into view.
package page

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/hero-particles/internal/config"
)

// Element is an interactive target (link or button) that triggers the cursor
// hover affordance.
type Element struct {
	Label  string
	Bounds Rect
}

type Section struct {
	Title   string
	Body    string
	Bounds  Rect
	Element *Element

	// Visible flips once and stays set.
	Visible bool
	Alpha   float64
	Offset  float64

	alphaTw  *gween.Tween
	offsetTw *gween.Tween
}

type Content struct {
	Title, Body, Label string
}

type Page struct {
	Sections []*Section
	ScrollY  float64

	viewW, viewH float64
	contentH     float64
}

// DefaultContent is the hero plus three content sections.
var DefaultContent = []Content{
	{"Atmospheric Data", "Signals drifting across the sky, rendered live.", "Get Started"},
	{"Collect", "Sensors stream readings from every station.", "Read more"},
	{"Analyze", "Patterns surface as the data settles.", "Explore"},
	{"Share", "Publish what you find with a single link.", "Contact"},
}

func New(content []Content) *Page {
	p := &Page{}
	for _, c := range content {
		p.Sections = append(p.Sections, &Section{
			Title:   c.Title,
			Body:    c.Body,
			Element: &Element{Label: c.Label},
		})
	}
	return p
}

// Resize lays the sections out against a w x h viewport. The first section
// is the hero and spans the viewport height.
func (p *Page) Resize(w, h int) {
	p.viewW, p.viewH = float64(w), float64(h)
	margin := p.viewW * config.SectionMargin
	width := max(p.viewW-2*margin, 0)

	y := 0.0
	for i, s := range p.Sections {
		height := float64(config.SectionHeight)
		if i == 0 {
			height = p.viewH
			s.Bounds = Rect{X: 0, Y: 0, W: p.viewW, H: height}
		} else {
			s.Bounds = Rect{X: margin, Y: y, W: width, H: height}
		}
		s.Element.Bounds = Rect{
			X: s.Bounds.X + (s.Bounds.W-config.ButtonWidth)/2,
			Y: s.Bounds.Y + s.Bounds.H - config.ButtonHeight - 40,
			W: config.ButtonWidth,
			H: config.ButtonHeight,
		}
		y += height + config.SectionGap
	}
	p.contentH = max(y-config.SectionGap, 0)
	p.ScrollBy(0)
}

// ScrollBy moves the view by dy pixels, clamped to the content.
func (p *Page) ScrollBy(dy float64) {
	maxScroll := max(p.contentH-p.viewH, 0)
	p.ScrollY = min(max(p.ScrollY+dy, 0), maxScroll)
}

// ElementAt returns the interactive element under viewport point (x, y).
func (p *Page) ElementAt(x, y float64) *Element {
	py := y + p.ScrollY
	for _, s := range p.Sections {
		if s.Element != nil && s.Element.Bounds.Contains(x, py) {
			return s.Element
		}
	}
	return nil
}

// Update reveals sections that crossed the visibility threshold and advances
// running fade-ins by dt seconds.
func (p *Page) Update(dt float32) {
	for _, s := range p.Sections {
		if !s.Visible && s.Bounds.visibleFraction(p.ScrollY, p.viewH) >= config.RevealThreshold {
			s.reveal()
		}
		s.update(dt)
	}
}

func (s *Section) reveal() {
	s.Visible = true
	s.Offset = config.RevealRise
	s.alphaTw = gween.New(0, 1, config.RevealSeconds, ease.OutCubic)
	s.offsetTw = gween.New(config.RevealRise, 0, config.RevealSeconds, ease.OutCubic)
}

func (s *Section) update(dt float32) {
	if s.alphaTw == nil {
		return
	}
	a, done := s.alphaTw.Update(dt)
	o, _ := s.offsetTw.Update(dt)
	s.Alpha, s.Offset = float64(a), float64(o)
	if done {
		s.alphaTw, s.offsetTw = nil, nil
	}
}

var (
	sectionColor = color.NRGBA{R: 30, G: 41, B: 59, A: 255}
	buttonColor  = color.NRGBA{R: config.ParticleR, G: config.ParticleG, B: config.ParticleB, A: 255}
	borderColor  = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
)

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp01(a))
	return c
}

func (p *Page) Draw(dst *ebiten.Image) {
	for i, s := range p.Sections {
		if s.Alpha <= 0 {
			continue
		}
		dy := s.Offset - p.ScrollY
		b := s.Bounds
		if b.Y+dy > p.viewH || b.Y+b.H+dy < 0 {
			continue
		}

		if i > 0 {
			vector.DrawFilledRect(dst, float32(b.X), float32(b.Y+dy), float32(b.W), float32(b.H),
				withAlpha(sectionColor, s.Alpha*config.SectionFillAlpha), false)
		}

		e := s.Element.Bounds
		vector.DrawFilledRect(dst, float32(e.X), float32(e.Y+dy), float32(e.W), float32(e.H), withAlpha(buttonColor, s.Alpha), false)
		vector.StrokeRect(dst, float32(e.X), float32(e.Y+dy), float32(e.W), float32(e.H), 1, withAlpha(borderColor, s.Alpha), false)

		// Debug text has no alpha; hold it back until the fade is mostly done.
		if s.Alpha < 0.5 {
			continue
		}
		tx := int(b.X) + 40
		ty := int(b.Y+dy) + 40
		if i == 0 {
			ty = int(b.Y+dy+b.H/2) - 40
		}
		ebitenutil.DebugPrintAt(dst, s.Title, tx, ty)
		ebitenutil.DebugPrintAt(dst, s.Body, tx, ty+20)
		ebitenutil.DebugPrintAt(dst, s.Element.Label, int(e.X)+12, int(e.Y+dy)+12)
	}
}
