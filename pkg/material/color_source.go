package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) SolidColor {
	return SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two color sources on a 3D lattice of cubes
// with edge length Scale, so the pattern is independent of UV mapping.
type Checker struct {
	invScale float64
	Even     ColorSource
	Odd      ColorSource
}

// NewChecker creates a checker pattern from two color sources
func NewChecker(scale float64, even, odd ColorSource) Checker {
	return Checker{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerFromColors creates a checker pattern from two solid colors
func NewCheckerFromColors(scale float64, even, odd core.Vec3) Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks Even or Odd from the parity of the lattice cell containing point
func (c Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
