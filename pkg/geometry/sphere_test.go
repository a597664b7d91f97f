package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

const tolerance = 1e-5

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(mgl32.Vec3{0, 0, 0}, 1.0)

	tests := []struct {
		name      string
		origin    mgl32.Vec3
		direction mgl32.Vec3
	}{
		{"perpendicular distance beyond radius", mgl32.Vec3{2, 0, 5}, mgl32.Vec3{0, 0, -1}},
		{"pointing away", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}},
		{"parallel offset", mgl32.Vec3{-5, 1.01, 0}, mgl32.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			if hitT, isHit := sphere.Intersect(ray); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hitT)
			}
		})
	}
}

func TestSphere_Intersect_NearestRoot(t *testing.T) {
	tests := []struct {
		name      string
		sphere    Sphere
		origin    mgl32.Vec3
		direction mgl32.Vec3
		expectedT float32
	}{
		{"front hit", NewSphere(mgl32.Vec3{0, 0, 0}, 1), mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 4},
		{"unnormalized direction", NewSphere(mgl32.Vec3{0, 0, 0}, 1), mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -7}, 4},
		{"large sphere", NewSphere(mgl32.Vec3{10, 0, 0}, 3), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 7},
		{"glancing hit", NewSphere(mgl32.Vec3{0, 0, 0}, 1), mgl32.Vec3{1, 0, 2}, mgl32.Vec3{0, 0, -1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hitT, isHit := tt.sphere.Intersect(ray)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math32.Abs(hitT-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hitT)
			}
		})
	}
}

func TestSphere_Intersect_OriginAtCenter(t *testing.T) {
	// v == 0 passes the behind check and the nearest root is -radius
	sphere := NewSphere(mgl32.Vec3{1, 2, 3}, 2.5)

	for _, direction := range []mgl32.Vec3{{1, 0, 0}, {0, -1, 0}, {1, 1, 1}} {
		ray := core.NewRay(sphere.Center, direction)
		hitT, isHit := sphere.Intersect(ray)
		if !isHit {
			t.Fatalf("Expected hit for direction %v", direction)
		}
		if math32.Abs(hitT+sphere.Radius) > tolerance {
			t.Errorf("Expected t=%f for direction %v, got %f", -sphere.Radius, direction, hitT)
		}
	}
}

func TestSphere_Intersect_OriginInsidePastCenter(t *testing.T) {
	// The center is behind the origin so the exit point is not reported
	sphere := NewSphere(mgl32.Vec3{0, 0, 0}, 2)
	ray := core.NewRay(mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{1, 0, 0})

	if hitT, isHit := sphere.Intersect(ray); isHit {
		t.Errorf("Expected miss for center behind origin, got t=%f", hitT)
	}
}

func TestSphere_Intersect_OriginInsideBeforeCenter(t *testing.T) {
	// Origin inside the sphere with the center ahead: the entry root is negative
	sphere := NewSphere(mgl32.Vec3{0, 0, 0}, 2)
	ray := core.NewRay(mgl32.Vec3{-0.5, 0, 0}, mgl32.Vec3{1, 0, 0})

	hitT, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math32.Abs(hitT-(-1.5)) > tolerance {
		t.Errorf("Expected t=-1.5, got %f", hitT)
	}
}

func TestSurface_StructuralEquality(t *testing.T) {
	a := NewSurface(mgl32.Vec3{1, 0, 0}, 1, mgl32.Vec3{0.21, 0.1, 0.47})
	b := NewSurface(mgl32.Vec3{1, 0, 0}, 1, mgl32.Vec3{0.21, 0.1, 0.47})
	c := NewSurface(mgl32.Vec3{1, 0, 0}, 1, mgl32.Vec3{0.21, 0.1, 0.48})

	if a != b {
		t.Error("Expected surfaces with identical fields to be equal")
	}
	if a == c {
		t.Error("Expected surfaces with different colors to differ")
	}
}

func TestLight_DirectionFrom(t *testing.T) {
	light := NewLight(mgl32.Vec3{-0.5, -2, 0}, 1, mgl32.Vec3{1, 1, 1})
	dir := light.DirectionFrom(mgl32.Vec3{-0.5, 2, 0})

	if dir.Sub(mgl32.Vec3{0, -1, 0}).Len() > tolerance {
		t.Errorf("Expected (0, -1, 0), got %v", dir)
	}
}
