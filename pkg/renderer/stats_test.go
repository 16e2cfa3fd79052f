package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_Coverage(t *testing.T) {
	if got := (RenderStats{}).Coverage(); got != 0 {
		t.Errorf("Expected 0 coverage for empty stats, got %f", got)
	}
	stats := RenderStats{TotalPixels: 4, LitPixels: 1, Duration: time.Second}
	if got := stats.Coverage(); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
}
