package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/geometry"
	"github.com/df07/go-torus-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]uint8               `json:"color"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func rgb(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// extractGeometryInfo describes a surface and its finish
func extractGeometryInfo(surface geometry.Surface) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"diffuse": rgb(surface.ColorDiffuse()),
		"ambient": rgb(surface.ColorAmbient()),
	}

	switch geom := surface.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vec(geom.UnitNormal)
		properties["originDistance"] = geom.OriginDistance
		return "plane", properties

	case *geometry.Torus:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		properties["tubeRadius"] = geom.TubeRadius
		properties["rotation"] = [2]float64{geom.RotX, geom.RotY}
		return "torus", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts the primary ray through one pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, raytracer, err := s.setupRaytracer(req, nil)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Unknown scene: %s", req.Scene))
		return
	}

	ray := raytracer.Screen().Ray(pixelX, pixelY)
	hit, ok := sceneObj.World.TraceNearest(ray)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	// Report the color the renderer would produce for this scene
	color := sceneObj.World.Trace(ray)
	if sceneObj.Mode == renderer.ModeDepth {
		config := renderer.DefaultConfig()
		color = sceneObj.World.TraceDepth(ray, config.DepthNear, config.DepthFar)
	}
	r8, g8, b8 := color.RGB8()
	geometryType, properties := extractGeometryInfo(hit.Surface)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vec(ray.At(hit.Distance)),
		Normal:       vec(hit.Normal),
		Distance:     hit.Distance,
		Color:        [3]uint8{r8, g8, b8},
		Properties:   properties,
	})
}
