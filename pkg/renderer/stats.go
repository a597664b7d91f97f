package renderer

import "time"

// BandStats contains statistics about a single rendered band
type BandStats struct {
	ID         int    // Band index, top to bottom
	Worker     int    // Worker slot that rendered the band
	FirstRow   int    // First image row covered by the band
	Rows       int    // Number of rows in the band
	Pixels     int    // Number of pixels traced
	RenderTime time.Duration
}

// FramePercent returns the share of the frame covered by the band
func (bs BandStats) FramePercent(height int) float64 {
	if height <= 0 {
		return 0
	}
	return 100.0 * float64(bs.Rows) / float64(height)
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int // Frame width
	Height      int // Frame height
	TotalPixels int // Total number of pixels rendered
	Workers     int // Number of workers used
	Bands       []BandStats
	RenderTime  time.Duration // Wall time for the entire frame
}

// PixelsPerSecond returns the overall tracing throughput
func (rs RenderStats) PixelsPerSecond() float64 {
	if rs.RenderTime <= 0 {
		return 0
	}
	return float64(rs.TotalPixels) / rs.RenderTime.Seconds()
}
