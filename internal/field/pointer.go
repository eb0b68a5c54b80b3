package field

import "sync"

// Pointer holds the last-known pointer position. The input side writes it
// with Set and the frame step reads it with Get; the last write wins.
type Pointer struct {
	mu   sync.RWMutex
	x, y float64
}

func (p *Pointer) Set(x, y float64) {
	p.mu.Lock()
	p.x, p.y = x, y
	p.mu.Unlock()
}

func (p *Pointer) Get() (float64, float64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.x, p.y
}
