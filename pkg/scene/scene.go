package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *geometry.HittableList
	Camera *renderer.CameraBuilder // Carries image size, sampling and background
}

// Builder creates a fresh scene each time it is called
type Builder func() *Scene

var builders = map[string]Builder{
	"default":       NewDefaultScene,
	"metal":         NewMetalScene,
	"bouncing":      NewBouncingScene,
	"checkered":     NewCheckeredScene,
	"quads":         NewQuadsScene,
	"simple-light":  NewSimpleLightScene,
	"cornell":       NewCornellScene,
	"cornell-smoke": NewCornellSmokeScene,
}

// Names lists the built-in scenes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene
func New(name string) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(), nil
}

func newScene(name string, camera *renderer.CameraBuilder) *Scene {
	return &Scene{
		Name:   name,
		World:  geometry.NewHittableList(),
		Camera: camera,
	}
}

// Finalize replaces the world's contents with a single BVH over them.
// Call it once, after every shape has been added.
func (s *Scene) Finalize(logger core.Logger) geometry.BVHStats {
	bvh := geometry.NewBVH(s.World.Objects())
	s.World.Clear()
	s.World.Add(bvh)

	stats := bvh.Stats()
	if logger != nil {
		bounds := bvh.BoundingBox()
		logger.Printf("Scene %s: BVH with %d nodes over %d shapes (max depth %d, avg depth %.1f), bounds %v to %v",
			s.Name, stats.TotalNodes, stats.LeafShapes, stats.MaxDepth, stats.AvgDepth, bounds.Min(), bounds.Max())
	}
	return stats
}
