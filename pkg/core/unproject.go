package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Unprojector maps screen pixels back into world space using the inverse of
// a view-projection transform. The inverse is computed once so a whole frame
// can share it.
type Unprojector struct {
	inverse mgl32.Mat4
}

// NewUnprojector inverts the transform, failing with ErrSingularTransform when
// it has no inverse.
func NewUnprojector(transform mgl32.Mat4) (*Unprojector, error) {
	if transform.Det() == 0 {
		return nil, ErrSingularTransform
	}
	return &Unprojector{inverse: transform.Inv()}, nil
}

// ScreenToNDC converts a pixel coordinate to normalized device coordinates.
// The y axis is flipped so that image row 0 is the top of the view.
func ScreenToNDC(x, y, width, height float32) (sx, sy float32) {
	sx = 2.0*((x+0.5)/width) - 1.0
	sy = -(2.0*((y+0.5)/height) - 1.0)
	return sx, sy
}

// Ray un-projects the pixel at both the near (z=-1) and far (z=+1) clip
// planes and returns the ray from the near point towards the far point.
func (u *Unprojector) Ray(x, y, width, height float32) Ray {
	sx, sy := ScreenToNDC(x, y, width, height)

	near := u.unproject(mgl32.Vec4{sx, sy, -1, 1})
	far := u.unproject(mgl32.Vec4{sx, sy, 1, 1})

	return Ray{
		Origin:    near.Vec3(),
		Direction: far.Sub(near).Normalize().Vec3(),
	}
}

// unproject applies the inverse transform and the perspective divide
func (u *Unprojector) unproject(clip mgl32.Vec4) mgl32.Vec4 {
	world := u.inverse.Mul4x1(clip)
	w := world.W()
	return mgl32.Vec4{world[0] / w, world[1] / w, world[2] / w, 1}
}
