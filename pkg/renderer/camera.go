package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the view parameters used to build a view-projection transform.
// Setters return the camera so they can be chained.
type Camera struct {
	eye         mgl32.Vec3
	center      mgl32.Vec3
	up          mgl32.Vec3
	near        float32
	far         float32
	fovy        float32 // Vertical field of view in radians
	aspectRatio float32
}

// NewCamera creates a camera at eye looking towards center with +Z up
func NewCamera(eye, center mgl32.Vec3) *Camera {
	return &Camera{
		eye:         eye,
		center:      center,
		up:          mgl32.Vec3{0, 0, 1},
		near:        0.1,
		far:         10.0,
		fovy:        1.0,
		aspectRatio: 1.0,
	}
}

// Up sets the up vector
func (c *Camera) Up(up mgl32.Vec3) *Camera {
	c.up = up
	return c
}

// Near sets the near clipping plane distance
func (c *Camera) Near(near float32) *Camera {
	c.near = near
	return c
}

// Far sets the far clipping plane distance
func (c *Camera) Far(far float32) *Camera {
	c.far = far
	return c
}

// Fovy sets the vertical field of view in radians
func (c *Camera) Fovy(fovy float32) *Camera {
	c.fovy = fovy
	return c
}

// AspectRatio sets the width/height ratio of the view
func (c *Camera) AspectRatio(aspectRatio float32) *Camera {
	c.aspectRatio = aspectRatio
	return c
}

// Transform returns projection * view, the matrix handed to the scene
func (c *Camera) Transform() mgl32.Mat4 {
	view := mgl32.LookAtV(c.eye, c.center, c.up)
	projection := mgl32.Perspective(c.fovy, c.aspectRatio, c.near, c.far)
	return projection.Mul4(view)
}
