package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuadsScene creates five colored quads facing a wide-angle camera
func NewQuadsScene() *Scene {
	camera := renderer.NewCameraBuilder().
		AspectRatio(1.0).
		VerticalFOV(80).
		LookFrom(core.NewVec3(0, 0, 9)).
		LookAt(core.NewVec3(0, 0, 0)).
		FocusDistance(10)

	s := newScene("quads", camera)

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.World.Add(geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed))
	s.World.Add(geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen))
	s.World.Add(geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue))
	s.World.Add(geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange))
	s.World.Add(geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal))

	return s
}

// NewSimpleLightScene lights two spheres with a single emissive quad against a black background
func NewSimpleLightScene() *Scene {
	camera := renderer.NewCameraBuilder().
		VerticalFOV(20).
		LookFrom(core.NewVec3(26, 3, 6)).
		LookAt(core.NewVec3(0, 2, 0)).
		FocusDistance(10).
		Background(core.NewVec3(0, 0, 0))

	s := newScene("simple-light", camera)

	checker := material.NewTexturedLambertian(
		material.NewCheckerFromColors(1.0, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, checker))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, checker))
	s.World.Add(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))

	return s
}
