package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Config controls how a render is split up and seeded
type Config struct {
	TileSize   int   // Tile edge length in pixels
	NumWorkers int   // Concurrent tiles; <= 0 uses every CPU
	Seed       int64 // Base seed; tile n draws from Seed+n
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   32,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Raytracer renders a finished world through a camera
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The world must not change while Render runs.
func NewRaytracer(world geometry.Shape, camera *Camera, integratorInst integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel and returns the gamma-corrected image
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	runID := uuid.NewString()
	width, height := rt.camera.Width(), rt.camera.Height()

	pixelStats := make([][]PixelStats, height)
	for j := range pixelStats {
		pixelStats[j] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	pool := NewWorkerPool(NewTileRenderer(rt.world, rt.camera, rt.integrator), rt.config.NumWorkers)

	cameraConfig := rt.camera.Config()
	rt.logger.Printf("Render %s: %dx%d, %d samples/pixel, depth %d, %d tiles on %d workers\n",
		runID, width, height, cameraConfig.SamplesPerPixel, cameraConfig.MaxDepth, len(tiles), pool.GetNumWorkers())

	stats, err := pool.RenderTiles(ctx, tiles, pixelStats)
	stats.RunID = runID
	stats.Elapsed = time.Since(start)
	if err != nil {
		return nil, stats, fmt.Errorf("render %s: %w", runID, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			img.SetRGBA(i, j, Vec3ToColor(pixelStats[j][i].GetColor()))
		}
	}

	rt.logger.Printf("Render %s completed in %v (%d samples)\n", runID, stats.Elapsed, stats.TotalSamples)
	return img, stats, nil
}

// LinearToGamma applies gamma 2; non-positive components map to 0
func LinearToGamma(component float64) float64 {
	if component > 0 {
		return math.Sqrt(component)
	}
	return 0
}

// Vec3ToColor converts a linear color to an 8-bit RGBA pixel
func Vec3ToColor(c core.Vec3) color.RGBA {
	intensity := core.NewInterval(0.0, 0.999)
	return color.RGBA{
		R: uint8(256 * intensity.Clamp(LinearToGamma(c.X))),
		G: uint8(256 * intensity.Clamp(LinearToGamma(c.Y))),
		B: uint8(256 * intensity.Clamp(LinearToGamma(c.Z))),
		A: 255,
	}
}
