package page

import (
	"testing"

	"github.com/iburimskiy/hero-particles/internal/config"
)

// 1000x800 viewport: hero [0,800), sections at [880,1300), [1380,1800), [1880,2300).
func testPage() *Page {
	p := New(DefaultContent)
	p.Resize(1000, 800)
	return p
}

func TestLayout(t *testing.T) {
	p := testPage()
	if got := p.Sections[0].Bounds; got != (Rect{0, 0, 1000, 800}) {
		t.Errorf("hero bounds = %+v", got)
	}
	if got := p.Sections[1].Bounds; got != (Rect{100, 880, 800, 420}) {
		t.Errorf("section 1 bounds = %+v", got)
	}
	if got := p.Sections[0].Element.Bounds; got != (Rect{430, 720, 140, 40}) {
		t.Errorf("hero button bounds = %+v", got)
	}
}

func TestScrollClamps(t *testing.T) {
	p := testPage()
	p.ScrollBy(-50)
	if p.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0", p.ScrollY)
	}
	p.ScrollBy(10000)
	if p.ScrollY != 1500 {
		t.Errorf("ScrollY = %v, want 1500", p.ScrollY)
	}

	// Content shorter than the viewport cannot scroll.
	short := New(DefaultContent[:1])
	short.Resize(1000, 800)
	short.ScrollBy(200)
	if short.ScrollY != 0 {
		t.Errorf("hero-only ScrollY = %v, want 0", short.ScrollY)
	}
}

func TestElementAt(t *testing.T) {
	p := testPage()
	if e := p.ElementAt(500, 730); e == nil || e.Label != DefaultContent[0].Label {
		t.Errorf("ElementAt(500, 730) = %v, want hero button", e)
	}
	if e := p.ElementAt(10, 10); e != nil {
		t.Errorf("ElementAt(10, 10) = %v, want nil", e)
	}

	p.ScrollBy(100)
	if e := p.ElementAt(500, 730); e != nil {
		t.Errorf("ElementAt after scroll = %v, want nil", e)
	}
	if e := p.ElementAt(500, 630); e == nil {
		t.Error("ElementAt(500, 630) after scroll = nil, want hero button")
	}
}

func TestRevealThreshold(t *testing.T) {
	p := testPage()
	p.Update(0)
	if !p.Sections[0].Visible {
		t.Error("hero should be revealed on first update")
	}
	if p.Sections[1].Visible {
		t.Error("section 1 revealed while off screen")
	}

	// 41/420 of section 1 in view: below threshold.
	p.ScrollBy(121)
	p.Update(0)
	if p.Sections[1].Visible {
		t.Error("section 1 revealed below threshold")
	}

	// 42/420 is exactly the threshold.
	p.ScrollBy(1)
	p.Update(0)
	if !p.Sections[1].Visible {
		t.Error("section 1 not revealed at threshold")
	}
	if p.Sections[2].Visible {
		t.Error("section 2 revealed while off screen")
	}

	// Reveal is one-shot.
	p.ScrollBy(-1000)
	p.Update(0)
	if !p.Sections[1].Visible {
		t.Error("section 1 hidden again after scrolling away")
	}
}

func TestRevealFade(t *testing.T) {
	p := testPage()
	p.Update(0)
	hero := p.Sections[0]
	if hero.Alpha != 0 || hero.Offset != config.RevealRise {
		t.Errorf("fade start alpha = %v offset = %v", hero.Alpha, hero.Offset)
	}

	p.Update(config.RevealSeconds / 2)
	if hero.Alpha <= 0 || hero.Alpha >= 1 {
		t.Errorf("mid-fade alpha = %v, want in (0, 1)", hero.Alpha)
	}

	p.Update(config.RevealSeconds)
	if hero.Alpha != 1 || hero.Offset != 0 {
		t.Errorf("fade end alpha = %v offset = %v, want 1 and 0", hero.Alpha, hero.Offset)
	}
}

func TestVisibleFraction(t *testing.T) {
	r := Rect{Y: 100, H: 200}
	tests := []struct {
		top, height, want float64
	}{
		{0, 50, 0},
		{0, 100, 0},
		{0, 150, 0.25},
		{150, 100, 0.5},
		{0, 1000, 1},
		{300, 100, 0},
	}
	for _, tt := range tests {
		if got := r.visibleFraction(tt.top, tt.height); got != tt.want {
			t.Errorf("visibleFraction(%v, %v) = %v, want %v", tt.top, tt.height, got, tt.want)
		}
	}
	if got := (Rect{}).visibleFraction(0, 100); got != 0 {
		t.Errorf("empty rect fraction = %v, want 0", got)
	}
}
