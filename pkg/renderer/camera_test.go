package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// scriptedSampler replays fixed 2D values and then falls back to a seeded stream
type scriptedSampler struct {
	values2D []core.Vec2
	value1D  float64
	fallback core.Sampler
}

func (s *scriptedSampler) Get1D() float64 { return s.value1D }

func (s *scriptedSampler) Get2D() core.Vec2 {
	if len(s.values2D) == 0 {
		return s.fallback.Get2D()
	}
	v := s.values2D[0]
	s.values2D = s.values2D[1:]
	return v
}

func (s *scriptedSampler) Get3D() core.Vec3 { return s.fallback.Get3D() }

func centeredSampler(time float64) *scriptedSampler {
	return &scriptedSampler{
		values2D: []core.Vec2{core.NewVec2(0.5, 0.5)},
		value1D:  time,
		fallback: core.NewSeededSampler(42),
	}
}

func TestCameraBuilder_Defaults(t *testing.T) {
	camera := NewCameraBuilder().Build()
	config := camera.Config()

	if config.Width != 400 || camera.Height() != 225 {
		t.Errorf("Expected 400x225, got %dx%d", config.Width, camera.Height())
	}
	if config.SamplesPerPixel != 100 || config.MaxDepth != 50 {
		t.Errorf("Expected 100 samples and depth 50, got %d and %d", config.SamplesPerPixel, config.MaxDepth)
	}
	if config.VFov != 20 || config.FocusDistance != 10 || config.DefocusAngle != 0 {
		t.Errorf("Unexpected lens defaults: %+v", config)
	}
	if config.Center != core.NewVec3(0, 0, -10) || config.LookAt != (core.Vec3{}) || config.Up != core.NewVec3(0, 1, 0) {
		t.Errorf("Unexpected placement defaults: %+v", config)
	}
	if config.Background != nil {
		t.Errorf("Expected no background by default, got %v", *config.Background)
	}
}

func TestCameraBuilder_Chaining(t *testing.T) {
	background := core.NewVec3(0.1, 0.1, 0.1)
	config := NewCameraBuilder().
		AspectRatio(1).
		ImageWidth(64).
		SamplesPerPixel(8).
		MaxDepth(3).
		VerticalFOV(40).
		LookFrom(core.NewVec3(1, 2, 3)).
		LookAt(core.NewVec3(0, 1, 0)).
		VUp(core.NewVec3(0, 0, 1)).
		DefocusAngle(0.6).
		FocusDistance(3.4).
		Background(background).
		Config()

	expected := CameraConfig{
		Center:          core.NewVec3(1, 2, 3),
		LookAt:          core.NewVec3(0, 1, 0),
		Up:              core.NewVec3(0, 0, 1),
		Width:           64,
		AspectRatio:     1,
		VFov:            40,
		SamplesPerPixel: 8,
		MaxDepth:        3,
		DefocusAngle:    0.6,
		FocusDistance:   3.4,
	}
	if config.Background == nil || *config.Background != background {
		t.Fatalf("Expected background %v", background)
	}
	config.Background = nil
	if config != expected {
		t.Errorf("Expected %+v, got %+v", expected, config)
	}
}

func TestCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		aspect   float64
		expected int
	}{
		{"16:9", 400, 16.0 / 9.0, 225},
		{"square", 64, 1.0, 64},
		{"portrait", 100, 0.5, 200},
		{"clamped to one row", 1, 16.0 / 9.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCameraBuilder().ImageWidth(tt.width).AspectRatio(tt.aspect).Build()
			if camera.Height() != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, camera.Height())
			}
		})
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCameraBuilder().
		ImageWidth(101).
		AspectRatio(1).
		VerticalFOV(90).
		LookFrom(core.NewVec3(0, 0, 0)).
		LookAt(core.NewVec3(0, 0, -1)).
		FocusDistance(1).
		Build()

	t.Run("center pixel looks forward", func(t *testing.T) {
		ray := camera.GetRay(50, 50, centeredSampler(0.25))
		dir := ray.Direction.Normalize()
		if math.Abs(dir.X) > 1e-9 || math.Abs(dir.Y) > 1e-9 || dir.Z > -1+1e-9 {
			t.Errorf("Expected direction (0,0,-1), got %v", dir)
		}
		if ray.Origin != (core.Vec3{}) {
			t.Errorf("Pinhole camera should shoot from its center, got %v", ray.Origin)
		}
		if ray.Time != 0.25 {
			t.Errorf("Expected time from the sampler, got %f", ray.Time)
		}
	})

	t.Run("row zero is the top of the image", func(t *testing.T) {
		ray := camera.GetRay(0, 0, centeredSampler(0))
		if ray.Direction.X >= 0 || ray.Direction.Y <= 0 {
			t.Errorf("Expected upper-left direction, got %v", ray.Direction)
		}
	})

	t.Run("jitter stays inside the pixel", func(t *testing.T) {
		// With a 90° fov at focus distance 1 the viewport is 2 units across
		pixelSize := 2.0 / 101
		sampler := core.NewSeededSampler(3)
		for k := 0; k < 200; k++ {
			ray := camera.GetRay(50, 50, sampler)
			p := ray.At(1.0 / -ray.Direction.Z) // intersection with z=-1
			if math.Abs(p.X) > pixelSize/2+1e-12 || math.Abs(p.Y) > pixelSize/2+1e-12 {
				t.Fatalf("Sample %v outside center pixel", p)
			}
		}
	})
}

func TestCamera_DefocusDisc(t *testing.T) {
	center := core.NewVec3(0, 0, 5)
	focusDistance := 5.0
	defocusAngle := 10.0
	camera := NewCameraBuilder().
		ImageWidth(51).
		AspectRatio(1).
		LookFrom(center).
		LookAt(core.NewVec3(0, 0, 0)).
		DefocusAngle(defocusAngle).
		FocusDistance(focusDistance).
		Build()

	radius := focusDistance * math.Tan(defocusAngle/2*math.Pi/180)
	fallback := core.NewSeededSampler(11)
	var focusPoint *core.Vec3
	spread := false

	for k := 0; k < 100; k++ {
		sampler := &scriptedSampler{values2D: []core.Vec2{core.NewVec2(0.5, 0.5)}, fallback: fallback}
		ray := camera.GetRay(25, 25, sampler)

		if ray.Origin.Subtract(center).Length() > radius+1e-9 {
			t.Fatalf("Origin %v outside defocus disc of radius %f", ray.Origin, radius)
		}
		if ray.Origin != center {
			spread = true
		}

		// Every ray through the same pixel point meets at the focus plane
		p := ray.At(focusDistance / -ray.Direction.Z)
		if focusPoint == nil {
			focusPoint = &p
		} else if p.Subtract(*focusPoint).Length() > 1e-9 {
			t.Fatalf("Expected rays to converge at %v, got %v", *focusPoint, p)
		}
	}

	if !spread {
		t.Error("Expected ray origins spread over the defocus disc")
	}
}
