package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for every query, so a
// scattered ray cannot re-hit the surface it just left
const ShadowAcneEpsilon = 0.001

// Config selects what rays that escape the scene see
type Config struct {
	Background *core.Vec3 // Constant background; nil selects the sky gradient
	SkyTop     core.Vec3  // Gradient color straight up
	SkyBottom  core.Vec3  // Gradient color straight down
}

// DefaultConfig returns the white-to-blue sky gradient
func DefaultConfig() Config {
	return Config{
		SkyTop:    core.NewVec3(0.5, 0.7, 1.0),
		SkyBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.Background(ray)
	}

	colorEmitted := hit.Material.Emit(hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Light source or full absorption
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))

	return colorEmitted.Add(colorScattered)
}

// Background returns the radiance seen by a ray that escapes the scene
func (pt *PathTracingIntegrator) Background(r core.Ray) core.Vec3 {
	if pt.config.Background != nil {
		return *pt.config.Background
	}

	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.config.SkyBottom.Multiply(1.0 - t).Add(pt.config.SkyTop.Multiply(t))
}
