package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center          core.Vec3  // Camera position (look from)
	LookAt          core.Vec3  // Point the camera is looking at
	Up              core.Vec3  // Up direction (usually 0,1,0)
	Width           int        // Image width in pixels
	AspectRatio     float64    // Width / height ratio
	VFov            float64    // Vertical field of view in degrees
	SamplesPerPixel int        // Samples averaged into each pixel
	MaxDepth        int        // Maximum path segments per sample
	DefocusAngle    float64    // Full cone angle at the focus plane in degrees; 0 = pinhole
	FocusDistance   float64    // Distance from camera center to the plane of perfect focus
	Background      *core.Vec3 // Constant background; nil selects the sky gradient
}

// DefaultCameraConfig returns the camera used when a scene sets nothing
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:          core.NewVec3(0, 0, -10),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            20.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// CameraBuilder assembles a CameraConfig through chained setters
type CameraBuilder struct {
	config CameraConfig
}

// NewCameraBuilder starts from DefaultCameraConfig
func NewCameraBuilder() *CameraBuilder {
	return &CameraBuilder{config: DefaultCameraConfig()}
}

// AspectRatio sets the image width divided by its height
func (b *CameraBuilder) AspectRatio(ratio float64) *CameraBuilder {
	b.config.AspectRatio = ratio
	return b
}

// ImageWidth sets the image width in pixels; the height follows from the aspect ratio
func (b *CameraBuilder) ImageWidth(width int) *CameraBuilder {
	b.config.Width = width
	return b
}

// SamplesPerPixel sets how many samples are averaged into each pixel
func (b *CameraBuilder) SamplesPerPixel(samples int) *CameraBuilder {
	b.config.SamplesPerPixel = samples
	return b
}

// MaxDepth sets the maximum number of path segments per sample
func (b *CameraBuilder) MaxDepth(depth int) *CameraBuilder {
	b.config.MaxDepth = depth
	return b
}

// VerticalFOV sets the vertical field of view in degrees
func (b *CameraBuilder) VerticalFOV(degrees float64) *CameraBuilder {
	b.config.VFov = degrees
	return b
}

// LookFrom sets the camera position
func (b *CameraBuilder) LookFrom(center core.Vec3) *CameraBuilder {
	b.config.Center = center
	return b
}

// LookAt sets the point the camera faces
func (b *CameraBuilder) LookAt(target core.Vec3) *CameraBuilder {
	b.config.LookAt = target
	return b
}

// VUp sets the world direction that appears up in the image
func (b *CameraBuilder) VUp(up core.Vec3) *CameraBuilder {
	b.config.Up = up
	return b
}

// DefocusAngle sets the full cone angle of the lens blur; 0 is a pinhole
func (b *CameraBuilder) DefocusAngle(degrees float64) *CameraBuilder {
	b.config.DefocusAngle = degrees
	return b
}

// FocusDistance sets the distance to the plane in perfect focus
func (b *CameraBuilder) FocusDistance(distance float64) *CameraBuilder {
	b.config.FocusDistance = distance
	return b
}

// Background sets a constant background color in place of the sky gradient
func (b *CameraBuilder) Background(color core.Vec3) *CameraBuilder {
	b.config.Background = &color
	return b
}

// Config returns a copy of the configuration built so far
func (b *CameraBuilder) Config() CameraConfig {
	return b.config
}

// Build creates the camera
func (b *CameraBuilder) Build() *Camera {
	return NewCamera(b.config)
}

// Camera generates primary rays through the pixels of a viewport
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3
	pixel00     core.Vec3 // Center of the upper-left pixel
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	defocusU    core.Vec3 // Defocus disc horizontal radius
	defocusV    core.Vec3 // Defocus disc vertical radius
}

// NewCamera creates a camera from configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := max(1, int(float64(config.Width)/config.AspectRatio))

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Image rows run top to bottom, so the vertical edge points down
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	upperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180.0)

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      config.Center,
		pixel00:     upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5)),
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		defocusU:    u.Multiply(defocusRadius),
		defocusV:    v.Multiply(defocusRadius),
	}
}

// GetRay returns a ray toward a random point inside pixel (i, j), with j=0
// the top row. The origin lies on the defocus disc and the time is random.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = c.center.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels, at least 1
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
