package renderer

import (
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Band is a horizontal strip of the frame rendered by a single worker
type Band struct {
	ID     int
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewBandGrid splits the frame into full-width bands of at most bandHeight rows
func NewBandGrid(width, height, bandHeight int) []*Band {
	if bandHeight <= 0 {
		bandHeight = height
	}

	var bands []*Band
	for y0, id := 0, 0; y0 < height; y0, id = y0+bandHeight, id+1 {
		y1 := min(y0+bandHeight, height) // Don't exceed image bounds
		bands = append(bands, &Band{
			ID:     id,
			Bounds: image.Rect(0, y0, width, y1),
		})
	}

	return bands
}

// BandFunc renders the pixels of a band
type BandFunc func(band *Band)

// WorkerPool renders bands in parallel. Bands cover disjoint pixels so the
// render function may write to a shared image without locking.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every band and blocks until all of them are done. The returned
// stats are ordered by band ID.
func (wp *WorkerPool) Run(bands []*Band, render BandFunc) []BandStats {
	stats := make([]BandStats, len(bands))

	// Worker slots are handed out through a channel so each band records
	// which slot rendered it.
	slots := make(chan int, wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		slots <- i
	}

	var group errgroup.Group
	group.SetLimit(wp.numWorkers)
	for i, band := range bands {
		i, band := i, band
		group.Go(func() error {
			worker := <-slots
			defer func() { slots <- worker }()

			start := time.Now()
			render(band)

			// Each goroutine owns stats[i]
			stats[i] = BandStats{
				ID:         band.ID,
				Worker:     worker,
				FirstRow:   band.Bounds.Min.Y,
				Rows:       band.Bounds.Dy(),
				Pixels:     band.Bounds.Dx() * band.Bounds.Dy(),
				RenderTime: time.Since(start),
			}
			return nil
		})
	}

	// Band rendering cannot fail; Wait only joins the goroutines
	_ = group.Wait()
	return stats
}
