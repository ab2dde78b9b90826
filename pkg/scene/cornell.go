package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// boxSize is the edge length of the standard Cornell room
const boxSize = 555.0

func cornellCamera() *renderer.CameraBuilder {
	return renderer.NewCameraBuilder().
		AspectRatio(1.0).
		ImageWidth(600).
		SamplesPerPixel(200).
		MaxDepth(50).
		VerticalFOV(40).
		LookFrom(core.NewVec3(278, 278, -800)).
		LookAt(core.NewVec3(278, 278, 0)).
		Background(core.NewVec3(0, 0, 0))
}

// addCornellRoom adds the five walls and the ceiling light, returning the white wall material
func addCornellRoom(world *geometry.HittableList) material.Material {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world.Add(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red))
	world.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	world.Add(geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white))

	return white
}

// NewCornellScene creates the classic Cornell box with two axis-aligned blocks
func NewCornellScene() *Scene {
	s := newScene("cornell", cornellCamera())
	white := addCornellRoom(s.World)

	s.World.Add(geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white))
	s.World.Add(geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white))

	return s
}

// NewCornellSmokeScene fills two rotated blocks of the Cornell box with
// dark and light smoke
func NewCornellSmokeScene() *Scene {
	s := newScene("cornell-smoke", cornellCamera())
	white := addCornellRoom(s.World)

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallPlaced := geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortPlaced := geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))

	s.World.Add(geometry.NewConstantMedium(tallPlaced, 0.01, core.NewVec3(0, 0, 0)))
	s.World.Add(geometry.NewConstantMedium(shortPlaced, 0.01, core.NewVec3(1, 1, 1)))

	return s
}
