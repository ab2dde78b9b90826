package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a shape about the +Y axis
type RotateY struct {
	Object   Shape
	Angle    float64    // Degrees
	toWorld  mgl64.Mat3 // object -> world
	toObject mgl64.Mat3 // world -> object
	bbox     core.AABB
}

// NewRotateY wraps object so that it appears rotated by angle degrees
func NewRotateY(object Shape, angle float64) *RotateY {
	radians := mgl64.DegToRad(angle)
	r := &RotateY{
		Object:   object,
		Angle:    angle,
		toWorld:  mgl64.Rotate3DY(radians),
		toObject: mgl64.Rotate3DY(-radians),
	}

	inner := object.BoundingBox()
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, inner.X),
					pick(j, inner.Y),
					pick(k, inner.Z),
				)
				rotated := r.rotate(r.toWorld, corner)
				lo = core.NewVec3(math.Min(lo.X, rotated.X), math.Min(lo.Y, rotated.Y), math.Min(lo.Z, rotated.Z))
				hi = core.NewVec3(math.Max(hi.X, rotated.X), math.Max(hi.Y, rotated.Y), math.Max(hi.Z, rotated.Z))
			}
		}
	}

	r.bbox = core.NewAABBFromPoints(lo, hi)
	return r
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	rotatedRay := core.NewRayAtTime(
		r.rotate(r.toObject, ray.Origin),
		r.rotate(r.toObject, ray.Direction),
		ray.Time,
	)

	hit, ok := r.Object.Hit(rotatedRay, rayT, sampler)
	if !ok {
		return nil, false
	}

	// Rotation preserves the sign of dot(dir, normal), so FrontFace stays valid
	hit.Point = r.rotate(r.toWorld, hit.Point)
	hit.Normal = r.rotate(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the eight rotated corners of the inner box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

func (r *RotateY) isShape() {}

func (r *RotateY) rotate(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out.X(), out.Y(), out.Z())
}

// pick selects the low (0) or high (1) end of an interval
func pick(i int, interval core.Interval) float64 {
	if i == 1 {
		return interval.Max
	}
	return interval.Min
}
