// Package field simulates the pointer-reactive particle background.
package field

import (
	"math/rand/v2"
	"sync"

	"github.com/iburimskiy/hero-particles/internal/config"
)

type randSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Field owns a fixed-size set of particles sized to the viewport. The set is
// regenerated wholesale on Resize; Step, Draw and Resize are serialized.
type Field struct {
	mu        sync.Mutex
	particles []Particle
	width     int
	height    int
	pointer   Pointer
	rng       randSource
}

type Option func(*Field)

// WithRand makes particle generation draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) {
		if r != nil {
			f.rng = r
		}
	}
}

func New(width, height int, opts ...Option) *Field {
	f := &Field{rng: globalRand{}}
	for _, opt := range opts {
		opt(f)
	}
	f.Resize(width, height)
	return f
}

// ParticleCount returns min(floor(width*0.1), 150), never negative.
func ParticleCount(width int) int {
	if width <= 0 {
		return 0
	}
	n := int(float64(width) * config.ParticleDensity)
	return min(n, config.MaxParticles)
}

// Resize discards every particle and generates a fresh set for the new
// viewport.
func (f *Field) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.width, f.height = width, height
	n := ParticleCount(width)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, float64(width), float64(height))
	}
}

// Step advances every particle one frame against the current pointer.
func (f *Field) Step() {
	px, py := f.pointer.Get()

	f.mu.Lock()
	defer f.mu.Unlock()

	w, h := float64(f.width), float64(f.height)
	for i := range f.particles {
		f.particles[i].Update(px, py, w, h)
	}
}

func (f *Field) Pointer() *Pointer { return &f.pointer }

func (f *Field) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.particles)
}

func (f *Field) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}
