package scene

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

var ambientGray = color.RGBA{R: 76, G: 76, B: 76, A: 255}

func renderDefault(t *testing.T, options renderer.Options) *image.RGBA {
	t.Helper()
	img, _, err := NewDefaultScene().RenderImage(options)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	return img
}

func TestRender_Golden4x4_Deterministic(t *testing.T) {
	first := renderDefault(t, renderer.Options{Width: 4, Height: 4, Workers: 1})
	second := renderDefault(t, renderer.Options{Width: 4, Height: 4, Workers: 1})
	parallel := renderDefault(t, renderer.Options{Width: 4, Height: 4, Workers: 4, BandHeight: 1})

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Two renders of the same scene differ")
	}
	if !bytes.Equal(first.Pix, parallel.Pix) {
		t.Error("Parallel render differs from the single worker render")
	}
}

func TestRender_Golden4x4(t *testing.T) {
	img := renderDefault(t, renderer.Options{Width: 4, Height: 4, Workers: 2})

	gray := ambientGray
	expected := [4][4]color.RGBA{
		{gray, {112, 24, 52, 255}, {167, 34, 78, 255}, gray},
		{gray, {76, 17, 35, 255}, {193, 39, 90, 255}, gray},
		{gray, gray, gray, gray},
		{gray, gray, gray, gray},
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGBAAt(x, y); got != expected[y][x] {
				t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, expected[y][x], got)
			}
		}
	}
}

func TestRender_Golden4x4_ShadowedPixel(t *testing.T) {
	img := renderDefault(t, renderer.Options{Width: 4, Height: 4, Workers: 1})

	// The small sphere blocks the light: pink surface times the 0.3 ambient
	s := NewDefaultScene()
	pink := s.Surfaces()[0].Color
	expected := core.ToRGBA(core.Modulate(pink, s.AmbientColor()))
	if expected != (color.RGBA{76, 17, 35, 255}) {
		t.Fatalf("Unexpected shadowed color %v", expected)
	}
	if got := img.RGBAAt(1, 1); got != expected {
		t.Errorf("Expected shadowed pixel %v, got %v", expected, got)
	}
}

func TestRender_SmallSphereAtImageCentre(t *testing.T) {
	img := renderDefault(t, renderer.Options{Width: 32, Height: 32})

	// The violet sphere sits on the optical axis in front of the pink one
	got := img.RGBAAt(15, 16)
	if got == ambientGray || got.B <= got.R {
		t.Errorf("Expected violet surface at the image centre, got %v", got)
	}
}

func TestRender_PNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	options := renderer.Options{Width: 8, Height: 8, Workers: 2}

	stats, err := NewDefaultScene().RenderWithOptions(options, imageio.NewPNGFile(path))
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if stats.TotalPixels != 64 {
		t.Errorf("Expected 64 pixels in stats, got %d", stats.TotalPixels)
	}

	loaded, err := imageio.LoadImage(path)
	if err != nil {
		t.Fatalf("Unexpected error loading render: %v", err)
	}
	expected := renderDefault(t, options)
	if !bytes.Equal(loaded.Pix, expected.Pix) {
		t.Error("PNG contents differ from the in-memory render")
	}
}

func TestRender_MemorySink(t *testing.T) {
	var sink imageio.Memory
	if _, err := NewDefaultScene().Render(4, 4, &sink); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if sink.Image == nil || sink.Image.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("Expected a 4x4 image in the sink, got %v", sink.Image)
	}

	expected := renderDefault(t, renderer.Options{Width: 4, Height: 4, Workers: 1})
	if !bytes.Equal(sink.Image.Pix, expected.Pix) {
		t.Error("Render differs from the single worker render")
	}
}

type failingSink struct{ err error }

func (f failingSink) Write(*image.RGBA) error { return f.err }

func TestRender_Errors(t *testing.T) {
	sinkErr := errors.New("disk full")

	tests := []struct {
		name        string
		scene       *Scene
		width       int
		height      int
		sink        imageio.Sink
		expectedErr error
	}{
		{"sink failure", NewDefaultScene(), 2, 2, failingSink{sinkErr}, sinkErr},
		{"invalid dimensions", NewDefaultScene(), 0, 2, &imageio.Memory{}, renderer.ErrInvalidDimensions},
		{"singular transform", NewScene(mgl32.Mat4{}), 2, 2, &imageio.Memory{}, core.ErrSingularTransform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.scene.Render(tt.width, tt.height, tt.sink)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("Expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
