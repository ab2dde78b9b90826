package core

// MinAABBThickness is the smallest extent any AABB axis is allowed to have.
// Flat geometry such as axis-aligned quads is padded up to it so the box
// keeps a non-zero volume.
const MinAABBThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis.
// Values are immutable; every constructor pads thin axes.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	aabb := AABB{X: x, Y: y, Z: z}
	aabb.padToMinimums()
	return aabb
}

// EmptyAABB returns a box that contains nothing; NewAABBFromBoxes(EmptyAABB(), b) == b
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
}

// NewAABBFromPoints creates the AABB with a and b as opposite corners
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(min(a.X, b.X), max(a.X, b.X)),
		NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	)
}

// NewAABBFromBoxes returns the AABB enclosing both a and b
func NewAABBFromBoxes(a, b AABB) AABB {
	return NewAABB(
		NewIntervalFromIntervals(a.X, b.X),
		NewIntervalFromIntervals(a.Y, b.Y),
		NewIntervalFromIntervals(a.Z, b.Z),
	)
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests if a ray intersects this AABB within rayT using the slab method.
// Division by a zero direction component yields ±Inf, which the comparisons
// below handle without a special case.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection

		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties go to the axis compared last, which keeps BVH shapes reproducible.
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Shift returns the AABB translated by offset
func (aabb AABB) Shift(offset Vec3) AABB {
	return NewAABB(aabb.X.Shift(offset.X), aabb.Y.Shift(offset.Y), aabb.Z.Shift(offset.Z))
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < MinAABBThickness {
		aabb.X = aabb.X.Expand(MinAABBThickness)
	}
	if aabb.Y.Size() < MinAABBThickness {
		aabb.Y = aabb.Y.Expand(MinAABBThickness)
	}
	if aabb.Z.Size() < MinAABBThickness {
		aabb.Z = aabb.Z.Expand(MinAABBThickness)
	}
}
