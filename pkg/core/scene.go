package core

import "github.com/go-gl/mathgl/mgl32"

// Scene is what the renderer needs from a scene: the view-projection
// transform used to generate camera rays and a way to shade a ray.
// Defined here to avoid circular imports between renderer and scene.
type Scene interface {
	CameraTransform() mgl32.Mat4
	Trace(ray Ray) mgl32.Vec3
}
