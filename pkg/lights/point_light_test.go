package lights

import (
	"testing"

	"github.com/df07/go-torus-raytracer/pkg/core"
)

func TestPointLight_Offset(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 3, 4), core.White)

	offset, dist := light.Offset(core.Origin)
	if offset != core.NewVec3(0, 3, 4) {
		t.Errorf("Expected offset (0, 3, 4), got %v", offset)
	}
	if dist != 5 {
		t.Errorf("Expected distance 5, got %f", dist)
	}
}
