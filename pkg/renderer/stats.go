package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	LitPixels   int           // Pixels that came out non-black
	Duration    time.Duration // Wall time of the render
}

// Coverage returns the fraction of pixels that are non-black
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.LitPixels) / float64(s.TotalPixels)
}
