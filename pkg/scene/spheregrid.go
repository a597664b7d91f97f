package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) mgl32.Vec3 {
	hRad := mgl32.DegToRad(h)

	// OKLCH -> OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB -> LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return mgl32.Vec3{
		mgl32.Clamp(r, 0, 1),
		mgl32.Clamp(g, 0, 1),
		mgl32.Clamp(blue, 0, 1),
	}
}

// NewSphereGridScene creates a scene with a gridSize x gridSize grid of
// spheres resting on the XY plane, hue varying along X and chroma along Y.
func NewSphereGridScene(gridSize int) *Scene {
	if gridSize < 2 {
		gridSize = 2
	}

	transform := renderer.NewCamera(mgl32.Vec3{-9, -6, 7}, mgl32.Vec3{0, 0, 0}).
		Far(40).
		Fovy(0.8).
		Transform()

	s := NewScene(transform).
		Ambient(mgl32.Vec3{0.15, 0.15, 0.2}).
		AddLight(mgl32.Vec3{-4, -10, 12}, 2, mgl32.Vec3{1, 1, 1})

	// Fit the grid into a fixed footprint
	const targetArea = 8.0
	spacing := targetArea / float32(gridSize-1)
	radius := math32.Min(0.45, spacing*0.35)

	const (
		baseLightness = 0.7
		minChroma     = 0.05
		maxChroma     = 0.25
	)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2.0
			y := float32(j)*spacing - targetArea/2.0

			hue := float32(i) / float32(gridSize-1) * 360.0
			chroma := minChroma + float32(j)/float32(gridSize-1)*(maxChroma-minChroma)

			s.AddSphere(mgl32.Vec3{x, y, radius}, radius, oklchToRGB(baseLightness, chroma, hue))
		}
	}

	return s
}
