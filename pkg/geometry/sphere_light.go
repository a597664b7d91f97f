package geometry

import "github.com/go-gl/mathgl/mgl32"

// Light is a point light. Only its center takes part in shading; the radius
// and intensity are carried for scene descriptions.
type Light struct {
	Sphere
	Intensity mgl32.Vec3
}

// NewLight creates a new light
func NewLight(center mgl32.Vec3, radius float32, intensity mgl32.Vec3) Light {
	return Light{
		Sphere:    NewSphere(center, radius),
		Intensity: intensity,
	}
}

// DirectionFrom returns the unit direction from point towards the light center
func (l Light) DirectionFrom(point mgl32.Vec3) mgl32.Vec3 {
	return l.Center.Sub(point).Normalize()
}
