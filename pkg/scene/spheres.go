package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// bouncingSeed fixes the random layout of the bouncing spheres
const bouncingSeed = 1

// NewDefaultScene creates three spheres on a large ground sphere under the sky
func NewDefaultScene() *Scene {
	camera := renderer.NewCameraBuilder().
		LookFrom(core.NewVec3(0, 0, 0)).
		LookAt(core.NewVec3(0, 0, -1)).
		VerticalFOV(90).
		FocusDistance(1)

	s := newScene("default", camera)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	fuzzyGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass))
	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, fuzzyGold))

	return s
}

// NewMetalScene swaps the glass sphere for a polished metal one
func NewMetalScene() *Scene {
	camera := renderer.NewCameraBuilder().
		LookFrom(core.NewVec3(0, 0, 0)).
		LookAt(core.NewVec3(0, 0, -1)).
		VerticalFOV(90).
		FocusDistance(1)

	s := newScene("metal", camera)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	silver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	fuzzyGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, 0), 100, ground))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, silver))
	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, fuzzyGold))

	return s
}

// NewBouncingScene creates a grid of small random spheres on a checkered
// ground; the diffuse ones move upward during the shutter interval
func NewBouncingScene() *Scene {
	camera := renderer.NewCameraBuilder().
		VerticalFOV(20).
		LookFrom(core.NewVec3(13, 2, 3)).
		LookAt(core.NewVec3(0, 0, 0)).
		DefocusAngle(0.6).
		FocusDistance(10)

	s := newScene("bouncing", camera)
	random := rand.New(rand.NewSource(bouncingSeed))

	checker := material.NewCheckerFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	randomColor := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				end := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.World.Add(geometry.NewMovingSphere(center, end, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := randomColor(0.5, 1)
				fuzz := 0.5 * random.Float64()
				s.World.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.World.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}

// NewCheckeredScene creates two large checker-textured spheres touching at the origin
func NewCheckeredScene() *Scene {
	camera := renderer.NewCameraBuilder().
		LookFrom(core.NewVec3(13, 2, 3)).
		DefocusAngle(0).
		FocusDistance(10)

	s := newScene("checkered", camera)

	checker := material.NewTexturedLambertian(
		material.NewCheckerFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker))

	return s
}
