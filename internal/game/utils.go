package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// viewportChanged reports whether a layout pass brings a new, non-empty size.
func viewportChanged(oldW, oldH, newW, newH int) bool {
	if newW <= 0 || newH <= 0 {
		return false
	}
	return oldW != newW || oldH != newH
}
