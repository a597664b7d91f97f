package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewDefaultScene creates the reference scene: a small violet sphere in front
// of a large pink one, lit by a single light off to the side.
func NewDefaultScene() *Scene {
	transform := renderer.NewCamera(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0}).Transform()

	return NewScene(transform).
		Ambient(mgl32.Vec3{0.3, 0.3, 0.3}).
		AddLight(mgl32.Vec3{-0.5, -2, 0}, 1, mgl32.Vec3{1, 1, 1}).
		AddSphere(mgl32.Vec3{4, 0, 3}, 3, mgl32.Vec3{1, 0.23, 0.47}).
		AddSphere(mgl32.Vec3{1, 0, 0}, 1, mgl32.Vec3{0.21, 0.1, 0.47})
}

// NewShadowScene creates a scene where a sphere casts a shadow on a large
// ground sphere below it.
func NewShadowScene() *Scene {
	transform := renderer.NewCamera(mgl32.Vec3{-7, -2, 3}, mgl32.Vec3{0, 0, 0}).
		Far(50).
		Fovy(0.9).
		Transform()

	return NewScene(transform).
		Ambient(mgl32.Vec3{0.25, 0.25, 0.3}).
		AddLight(mgl32.Vec3{1, 2, 8}, 0.5, mgl32.Vec3{1, 1, 1}).
		AddSphere(mgl32.Vec3{0, 0, -101}, 100, mgl32.Vec3{0.8, 0.8, 0.8}).
		AddSphere(mgl32.Vec3{0, 0, 0}, 1, mgl32.Vec3{0.9, 0.2, 0.2}).
		AddSphere(mgl32.Vec3{1.5, -2, -0.4}, 0.6, mgl32.Vec3{0.2, 0.4, 0.9})
}
