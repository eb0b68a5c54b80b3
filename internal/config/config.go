package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Hero Particles - wheel: scroll, F3: stats, Esc/Q: quit"
	TPS          = 60

	// Background fill behind the field
	BackgroundR = 10
	BackgroundG = 14
	BackgroundB = 26
)

// Particle field parameters
const (
	ParticleDensity   = 0.1 // particles per pixel of viewport width
	MaxParticles      = 150
	MaxDistance       = 150.0 // pointer repulsion radius
	RepulsionStrength = 5.0
	DriftX            = 0.5 // constant rightward drift per frame
	MaxSpeed          = 0.5
	MinRadius         = 1.0
	RadiusSpread      = 2.0
	MaxAlpha          = 0.5

	ParticleR = 59
	ParticleG = 130
	ParticleB = 246
)

// Cursor parameters
const (
	CursorDotRadius     = 4
	CursorOutlineRadius = 20
	CursorOutlineStroke = 2
	CursorFollowSeconds = 0.5
	CursorHoverScale    = 1.5
	CursorScaleSeconds  = 0.15
)

// Page layout and reveal parameters
const (
	SectionHeight    = 420
	SectionGap       = 80
	SectionMargin    = 0.1 // fraction of viewport width on each side
	ButtonWidth      = 140
	ButtonHeight     = 40
	RevealThreshold  = 0.1
	RevealSeconds    = 0.8
	RevealRise       = 30
	ScrollStep       = 60 // pixels per wheel notch
	SectionFillAlpha = 0.35
)

// Audio parameters
const (
	SampleRate     = 44100
	SpeakerBuffer  = 100 * time.Millisecond
	ChimeFrequency = 880.0
	ChimeDuration  = 120 * time.Millisecond
	ChimeVolume    = 0.15
)
