package core

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Modulate returns the component-wise product of two colors
func Modulate(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Clamp returns a color with components clamped to [minVal, maxVal]
func Clamp(c mgl32.Vec3, minVal, maxVal float32) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(c[0], minVal, maxVal),
		mgl32.Clamp(c[1], minVal, maxVal),
		mgl32.Clamp(c[2], minVal, maxVal),
	}
}

// ToRGBA clamps a linear color to [0, 1], scales it to [0, 255] and
// truncates each channel. No gamma correction is applied.
func ToRGBA(c mgl32.Vec3) color.RGBA {
	c = Clamp(c, 0, 1)
	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 255,
	}
}
