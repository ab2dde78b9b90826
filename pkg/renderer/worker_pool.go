package renderer

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// WorkerPool renders tiles in parallel with a bounded number of goroutines
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool; numWorkers <= 0 uses every CPU
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{renderer: renderer, numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// RenderTiles renders every tile into pixelStats and returns the combined
// statistics. Cancelling ctx stops workers from starting new tiles.
func (wp *WorkerPool) RenderTiles(ctx context.Context, tiles []*Tile, pixelStats [][]PixelStats) (RenderStats, error) {
	var (
		mu    sync.Mutex
		total RenderStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		tile := tile
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			stats := wp.renderer.RenderTile(tile, pixelStats)

			mu.Lock()
			total.merge(stats)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err == nil && total.TilesRendered < len(tiles) {
		// Tiles skipped after cancellation never reach g.Go
		err = ctx.Err()
	}

	total.finalize()
	return total, err
}
