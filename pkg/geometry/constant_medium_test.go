package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestConstantMedium_DenseScattersAtBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	fog := NewConstantMedium(boundary, 1e9, core.NewVec3(0.2, 0.3, 0.4))
	sampler := core.NewSeededSampler(42)

	hit, ok := fog.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1)), sampler)
	if !ok {
		t.Fatal("Dense medium should scatter")
	}
	if math.Abs(hit.T-4) > 1e-6 {
		t.Errorf("Expected scattering right at the boundary t≈4, got %f", hit.T)
	}
	if !hit.FrontFace || hit.Normal != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected arbitrary normal (1,0,0) with front face, got %v front=%v", hit.Normal, hit.FrontFace)
	}
	if _, isIsotropic := hit.Material.(material.Isotropic); !isIsotropic {
		t.Errorf("Expected isotropic phase function, got %T", hit.Material)
	}
}

func TestConstantMedium_RayStartingInside(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	fog := NewConstantMedium(boundary, 1e9, core.NewVec3(1, 1, 1))

	hit, ok := fog.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1)), core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Dense medium should scatter a ray starting inside it")
	}
	if hit.T < 0.001 || hit.T > 0.002 {
		t.Errorf("Expected scattering just past rayT.Min, got %f", hit.T)
	}
}

func TestConstantMedium_Misses(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)

	tests := []struct {
		name    string
		density float64
		ray     core.Ray
		rayT    core.Interval
	}{
		{"zero density", 0, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1))},
		{"negative density", -3, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1))},
		{"ray misses boundary", 1e9, core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1))},
		{"medium behind ray", 1e9, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)), core.NewInterval(0.001, math.Inf(1))},
		{"interval ends before medium", 1e9, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fog := NewConstantMedium(boundary, tt.density, core.NewVec3(1, 1, 1))
			sampler := core.NewSeededSampler(7)
			for i := 0; i < 100; i++ {
				if hit, ok := fog.Hit(tt.ray, tt.rayT, sampler); ok {
					t.Fatalf("Expected no scattering, got hit at t=%f", hit.T)
				}
			}
		})
	}
}

func TestConstantMedium_ScatterProbability(t *testing.T) {
	// Through the center the path length is 2, so P(scatter) = 1 - exp(-density*2)
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	density := 0.5
	fog := NewConstantMedium(boundary, density, core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(42)

	// Unnormalized direction: distances must be measured in world units
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -3))

	const trials = 20000
	scattered := 0
	for i := 0; i < trials; i++ {
		if hit, ok := fog.Hit(ray, core.NewInterval(0.001, math.Inf(1)), sampler); ok {
			scattered++
			if z := hit.Point.Z; z > 1+1e-9 || z < -1-1e-9 {
				t.Fatalf("Scattering point %v outside the boundary", hit.Point)
			}
		}
	}

	expected := 1 - math.Exp(-density*2)
	got := float64(scattered) / trials
	if math.Abs(got-expected) > 0.02 {
		t.Errorf("Expected scatter probability %f, got %f", expected, got)
	}
}
