package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Sink persists a rendered frame
type Sink interface {
	Write(img *image.RGBA) error
}

// PNGFile writes frames to a PNG file, creating parent directories as needed
type PNGFile struct {
	Path string
}

// NewPNGFile creates a sink writing to path
func NewPNGFile(path string) *PNGFile {
	return &PNGFile{Path: path}
}

// Write encodes the frame as PNG
func (p *PNGFile) Write(img *image.RGBA) error {
	if dir := filepath.Dir(p.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return file.Close()
}

// Memory keeps the last written frame, for tests and callers that post-process
type Memory struct {
	Image *image.RGBA
}

// Write stores the frame
func (m *Memory) Write(img *image.RGBA) error {
	m.Image = img
	return nil
}
