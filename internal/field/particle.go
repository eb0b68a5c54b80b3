package field

import (
	"image/color"
	"math"

	"github.com/iburimskiy/hero-particles/internal/config"
)

// Particle is one point of the background field. Color is fixed at creation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
	Color  color.NRGBA
}

func newParticle(r randSource, width, height float64) Particle {
	alpha := r.Float64() * config.MaxAlpha
	return Particle{
		X:      r.Float64() * width,
		Y:      r.Float64() * height,
		VX:     r.Float64()*2*config.MaxSpeed - config.MaxSpeed,
		VY:     r.Float64()*2*config.MaxSpeed - config.MaxSpeed,
		Radius: r.Float64()*config.RadiusSpread + config.MinRadius,
		Alpha:  alpha,
		Color: color.NRGBA{
			R: config.ParticleR,
			G: config.ParticleG,
			B: config.ParticleB,
			A: uint8(math.Round(alpha * 255)),
		},
	}
}

// Update advances the particle one frame: drift, pointer repulsion, then
// wraparound against the width x height viewport.
func (p *Particle) Update(px, py, width, height float64) {
	p.X += p.VX + config.DriftX
	p.Y += p.VY

	dx := px - p.X
	dy := py - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	// A pointer sitting exactly on the particle has no direction.
	if dist > 0 && dist < config.MaxDistance {
		force := (config.MaxDistance - dist) / config.MaxDistance
		p.X -= dx / dist * force * config.RepulsionStrength
		p.Y -= dy / dist * force * config.RepulsionStrength
	}

	p.X = wrap(p.X, width)
	p.Y = wrap(p.Y, height)
}

// wrap maps v back into [0, limit): past the far edge restarts at 0, below
// zero restarts just inside the far edge.
func wrap(v, limit float64) float64 {
	switch {
	case limit <= 0:
		return 0
	case v >= limit:
		return 0
	case v < 0:
		return math.Nextafter(limit, 0)
	}
	return v
}
