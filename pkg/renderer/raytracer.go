package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/log"
)

var logger = log.New("renderer")

// Raytracer casts one ray per pixel through the scene camera
type Raytracer struct {
	scene   core.Scene
	options Options
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene core.Scene, options Options) (*Raytracer, error) {
	if scene == nil {
		return nil, ErrNoScene
	}
	if options.Width <= 0 || options.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, options.Width, options.Height)
	}
	return &Raytracer{scene: scene, options: options}, nil
}

// RenderFrame traces every pixel of the frame and returns the image
func (rt *Raytracer) RenderFrame() (*image.RGBA, RenderStats, error) {
	unprojector, err := core.NewUnprojector(rt.scene.CameraTransform())
	if err != nil {
		return nil, RenderStats{}, err
	}

	width, height := rt.options.Width, rt.options.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	pool := NewWorkerPool(rt.options.Workers)
	bandHeight := rt.options.BandHeight
	if bandHeight <= 0 {
		// Ceiling division so every worker gets at most one band
		bandHeight = (height + pool.GetNumWorkers() - 1) / pool.GetNumWorkers()
	}
	bands := NewBandGrid(width, height, bandHeight)

	logger.Infof("rendering %dx%d frame in %d bands using %d workers",
		width, height, len(bands), pool.GetNumWorkers())

	start := time.Now()
	bandStats := pool.Run(bands, func(band *Band) {
		rt.RenderBounds(band.Bounds, img, unprojector)
		logger.Debugf("band %d (rows %d-%d) complete", band.ID, band.Bounds.Min.Y, band.Bounds.Max.Y-1)
	})

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		Workers:     pool.GetNumWorkers(),
		Bands:       bandStats,
		RenderTime:  time.Since(start),
	}
	logger.Infof("rendered frame in %s", stats.RenderTime)

	return img, stats, nil
}

// RenderBounds traces the pixels within bounds into img
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA, unprojector *core.Unprojector) {
	width := float32(rt.options.Width)
	height := float32(rt.options.Height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := unprojector.Ray(float32(x), float32(y), width, height)
			img.SetRGBA(x, y, core.ToRGBA(rt.scene.Trace(ray)))
		}
	}
}
