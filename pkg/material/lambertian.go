package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	noEmission
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) Lambertian {
	return Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) Lambertian {
	return Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering.
// A point in the unit ball projected onto the sphere is a uniform unit
// vector; adding it to the normal yields a cosine-weighted direction, so
// the albedo is the full estimator weight.
func (l Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	unitVector := core.SamplePointInUnitSphere(sampler.Get3D()).Normalize()
	scatterDirection := hit.Normal.Add(unitVector)

	// Catch the sample landing opposite the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}

func (Lambertian) isMaterial() {}
