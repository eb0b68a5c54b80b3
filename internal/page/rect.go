package page

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// visibleFraction returns how much of r's height lies inside the vertical
// band [top, top+height).
func (r Rect) visibleFraction(top, height float64) float64 {
	if r.H <= 0 {
		return 0
	}
	lo := max(r.Y, top)
	hi := min(r.Y+r.H, top+height)
	if hi <= lo {
		return 0
	}
	return clamp01((hi - lo) / r.H)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
