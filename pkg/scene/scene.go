package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Screen renderer.ScreenConfig
	World  *world.World
	Mode   renderer.Mode
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Lookup
	DisplayName string `json:"displayName"` // Title-cased ID
	Description string `json:"description"`
}

type builtin struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtin{
	"torus":   {"Torus around a sphere, two white lights", NewTorusScene},
	"depth":   {"Torus and sphere shaded by distance from the eye", NewDepthScene},
	"default": {"Tilted torus and sphere on a floor with colored lights", NewDefaultScene},
	"rings":   {"Three interlocking rotated tori", NewRingsScene},
}

// Lookup builds the built-in scene with the given name
func Lookup(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return b.build(), nil
}

// Names returns the sorted names of all built-in scenes
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for every built-in scene, sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, name := range Names() {
		infos = append(infos, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtins[name].description,
		})
	}
	return infos
}

// titleCase converts "interlocking-rings" or "my_scene" to "Interlocking Rings" / "My Scene"
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
