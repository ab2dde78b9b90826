package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape is anything a ray can hit: primitives, instances, volumes and the
// aggregates that group them. The unexported method closes the set to this package.
type Shape interface {
	// Hit returns the nearest intersection with t inside rayT. The sampler is
	// only consumed by participating media.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB

	isShape()
}
