package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a flat collection of shapes tested one by one
type HittableList struct {
	objects []Shape
	bbox    core.AABB
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB()}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the list's bounding box to cover it
func (l *HittableList) Add(shape Shape) {
	l.objects = append(l.objects, shape)
	l.bbox = core.NewAABBFromBoxes(l.bbox, shape.BoundingBox())
}

// Clear removes every shape
func (l *HittableList) Clear() {
	l.objects = nil
	l.bbox = core.EmptyAABB()
}

// Objects returns the shapes in insertion order
func (l *HittableList) Objects() []Shape {
	return l.objects
}

// Hit returns the closest hit among all shapes
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of every shape's box
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

func (l *HittableList) isShape() {}
