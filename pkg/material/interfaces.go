package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material is the closed set of surface and volume scattering models:
// Lambertian, Metal, Dielectric, Isotropic and DiffuseLight.
// The unexported method keeps other packages from adding variants.
type Material interface {
	// Scatter returns the attenuation and outgoing ray for a hit, or false if
	// the material absorbs the incoming ray.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emit returns radiance emitted at the hit; black for all non-emissive materials.
	Emit(uv core.Vec2, point core.Vec3) core.Vec3

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the outward side
	UV        core.Vec2 // Surface parametrization in [0,1]²
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is expected to be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by every material that does not emit light
type noEmission struct{}

func (noEmission) Emit(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
