package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/logging"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, opts, err := loadConfig(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.list {
		for _, name := range scene.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if opts.saveConfig != "" {
		if err := config.Save(cfg, opts.saveConfig); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote configuration to %s\n", opts.saveConfig)
		return nil
	}

	logger := logging.NewConsole(cfg.LogLevel)
	_, err = render(ctx, cfg, logger)
	return err
}

// cliOptions are the flags that select an action instead of a setting
type cliOptions struct {
	list       bool
	saveConfig string
}

// loadConfig layers command line flags over the config file and environment.
// Only flags that were given on the command line override.
func loadConfig(args []string, output io.Writer) (*config.Config, cliOptions, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := config.Default()
	flags := *defaults

	configPath := fs.String("config", "", "YAML config file")
	list := fs.Bool("list", false, "List available scenes and exit")
	saveConfig := fs.String("save-config", "", "Write the resolved configuration as YAML to this path and exit")
	fs.StringVar(&flags.Scene, "scene", defaults.Scene, "Scene: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&flags.Width, "width", 0, "Image width in pixels (0 keeps the scene's)")
	fs.Float64Var(&flags.AspectRatio, "aspect", 0, "Aspect ratio width/height (0 keeps the scene's)")
	fs.IntVar(&flags.Samples, "samples", 0, "Samples per pixel (0 keeps the scene's)")
	fs.IntVar(&flags.MaxDepth, "depth", 0, "Maximum path depth (0 keeps the scene's)")
	fs.IntVar(&flags.Workers, "workers", defaults.Workers, "Concurrent tiles (0 uses every CPU)")
	fs.IntVar(&flags.TileSize, "tile-size", defaults.TileSize, "Tile edge length in pixels")
	fs.Int64Var(&flags.Seed, "seed", defaults.Seed, "Base random seed")
	fs.StringVar(&flags.Output, "output", "", "Output file, .ppm or .png (default output/<scene>.ppm)")
	fs.StringVar(&flags.LogLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, cliOptions{}, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, cliOptions{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = flags.Scene
		case "width":
			cfg.Width = flags.Width
		case "aspect":
			cfg.AspectRatio = flags.AspectRatio
		case "samples":
			cfg.Samples = flags.Samples
		case "depth":
			cfg.MaxDepth = flags.MaxDepth
		case "workers":
			cfg.Workers = flags.Workers
		case "tile-size":
			cfg.TileSize = flags.TileSize
		case "seed":
			cfg.Seed = flags.Seed
		case "output":
			cfg.Output = flags.Output
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, cliOptions{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, cliOptions{list: *list, saveConfig: *saveConfig}, nil
}

// createScene builds the configured scene and applies the camera overrides
func createScene(cfg *config.Config) (*scene.Scene, error) {
	s, err := scene.New(cfg.Scene)
	if err != nil {
		return nil, err
	}

	if cfg.Width > 0 {
		s.Camera.ImageWidth(cfg.Width)
	}
	if cfg.AspectRatio > 0 {
		s.Camera.AspectRatio(cfg.AspectRatio)
	}
	if cfg.Samples > 0 {
		s.Camera.SamplesPerPixel(cfg.Samples)
	}
	if cfg.MaxDepth > 0 {
		s.Camera.MaxDepth(cfg.MaxDepth)
	}

	return s, nil
}

// render traces the configured scene and writes the image, returning its path
func render(ctx context.Context, cfg *config.Config, logger *logging.Logger) (string, error) {
	s, err := createScene(cfg)
	if err != nil {
		return "", err
	}

	s.Finalize(logger)
	camera := s.Camera.Build()

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.Background = camera.Config().Background

	raytracer := renderer.NewRaytracer(
		s.World,
		camera,
		integrator.NewPathTracingIntegrator(integratorConfig),
		renderer.Config{TileSize: cfg.TileSize, NumWorkers: cfg.Workers, Seed: cfg.Seed},
		logger,
	)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}

	path := cfg.OutputPath()
	if err := imageio.Save(path, img); err != nil {
		return "", err
	}

	logger.Infof("Saved %s (%dx%d, %.0f samples/pixel, average luminance %.3f)",
		path, img.Bounds().Dx(), img.Bounds().Dy(), stats.AverageSamples, renderer.CalculateAverageLuminance(img))
	return path, nil
}
