package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere is the geometry shared by surfaces and lights
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// NewSphere creates a new sphere
func NewSphere(center mgl32.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Intersect tests if a ray hits the sphere and returns the hit distance.
//
// Spheres whose center lies behind the ray origin are always rejected, even
// when the origin is inside the sphere. A ray starting at the center therefore
// reports t = -Radius.
func (s Sphere) Intersect(ray core.Ray) (float32, bool) {
	// Project the origin-to-center vector onto the ray
	l := s.Center.Sub(ray.Origin)
	v := l.Dot(ray.Direction)
	if v < 0 {
		return 0, false
	}

	// Squared distance between the center and the ray
	d2 := l.Dot(l) - v*v
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	d := math32.Sqrt(r2 - d2)
	return v - math32.Min(d, v+d), true
}

// Surface is a renderable sphere with a flat color
type Surface struct {
	Sphere
	Color mgl32.Vec3
}

// NewSurface creates a new surface
func NewSurface(center mgl32.Vec3, radius float32, color mgl32.Vec3) Surface {
	return Surface{
		Sphere: NewSphere(center, radius),
		Color:  color,
	}
}
