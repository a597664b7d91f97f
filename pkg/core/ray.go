package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay creates a new ray, normalizing the direction.
// A zero direction is not guarded against and yields NaN components.
func NewRay(origin, direction mgl32.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ThroughScreen builds the world-space ray passing through the centre of
// pixel (x, y) of a width x height image seen through the given
// view-projection transform.
func ThroughScreen(x, y, width, height float32, transform mgl32.Mat4) (Ray, error) {
	u, err := NewUnprojector(transform)
	if err != nil {
		return Ray{}, err
	}
	return u.Ray(x, y, width, height), nil
}
