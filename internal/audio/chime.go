package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// chime is a short sine tone with a linear fade-out, streamed in stereo.
type chime struct {
	pos      int
	total    int
	phaseInc float64
	volume   float64
}

func newChime(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *chime {
	return &chime{
		total:    sr.N(d),
		phaseInc: freq / float64(sr),
		volume:   volume,
	}
}

func (c *chime) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.total {
			break
		}
		env := 1 - float64(c.pos)/float64(c.total)
		v := math.Sin(2*math.Pi*c.phaseInc*float64(c.pos)) * env * c.volume
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
		n++
	}
	return n, true
}

func (c *chime) Err() error { return nil }
