package renderer

// Options contains frame configuration
type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Number of parallel workers (0 = use CPU count).
	Workers int

	// Height of each horizontal band handed to a worker (0 = split the
	// frame evenly across workers).
	BandHeight int
}

// DefaultOptions returns the options used by the command line renderer
func DefaultOptions() Options {
	return Options{
		Width:      1024,
		Height:     1024,
		Workers:    0,
		BandHeight: 0,
	}
}
