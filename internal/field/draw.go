package field

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders each particle as a filled circle of its radius and color.
func (f *Field) Draw(dst *ebiten.Image) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.particles {
		p := &f.particles[i]
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}
}
