package scene

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// diffuse returns the fixed light color added by an unobstructed light
func diffuse() mgl32.Vec3 { return mgl32.Vec3{0.5, 0.4, 0.5} }

// Scene contains all the elements needed for rendering. It is built with the
// chaining mutators before rendering and must not change while rendering.
type Scene struct {
	camera   mgl32.Mat4
	surfaces []geometry.Surface
	lights   []geometry.Light
	ambient  mgl32.Vec3
}

// NewScene creates an empty scene seen through the given view-projection transform
func NewScene(camera mgl32.Mat4) *Scene {
	return &Scene{
		camera:   camera,
		surfaces: make([]geometry.Surface, 0),
		lights:   make([]geometry.Light, 0),
		ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
	}
}

// Ambient sets the background and fill color
func (s *Scene) Ambient(color mgl32.Vec3) *Scene {
	s.ambient = color
	return s
}

// AddLight appends a point light
func (s *Scene) AddLight(center mgl32.Vec3, radius float32, color mgl32.Vec3) *Scene {
	s.lights = append(s.lights, geometry.NewLight(center, radius, color))
	return s
}

// AddSphere appends a renderable sphere
func (s *Scene) AddSphere(center mgl32.Vec3, radius float32, color mgl32.Vec3) *Scene {
	s.surfaces = append(s.surfaces, geometry.NewSurface(center, radius, color))
	return s
}

// CameraTransform returns the view-projection transform
func (s *Scene) CameraTransform() mgl32.Mat4 { return s.camera }

// Surfaces returns the renderable spheres in insertion order
func (s *Scene) Surfaces() []geometry.Surface { return s.surfaces }

// Lights returns the lights in insertion order
func (s *Scene) Lights() []geometry.Light { return s.lights }

// AmbientColor returns the ambient color
func (s *Scene) AmbientColor() mgl32.Vec3 { return s.ambient }

// Trace returns the unclamped color seen along a ray.
//
// Only the first light contributes. A hit point is in shadow when any other
// surface intersects the ray towards that light, wherever along the ray the
// intersection lies.
func (s *Scene) Trace(ray core.Ray) mgl32.Vec3 {
	closest, minT, found := s.closestHit(ray)
	if !found || len(s.lights) == 0 {
		return s.ambient
	}

	light := s.lights[0]
	point := ray.At(minT)
	lightDirection := light.DirectionFrom(point)
	lightRay := core.NewRay(point, lightDirection)

	if s.occluded(lightRay, closest) {
		return core.Modulate(closest.Color, s.ambient)
	}

	normal := point.Sub(closest.Center).Normalize()
	lambert := math32.Max(normal.Dot(lightDirection), 0)
	illumination := s.ambient.Add(diffuse().Mul(lambert))
	return core.Modulate(closest.Color, illumination)
}

// closestHit scans every surface for the smallest hit distance
func (s *Scene) closestHit(ray core.Ray) (geometry.Surface, float32, bool) {
	var closest geometry.Surface
	minT := math32.Inf(1)
	found := false

	for _, surface := range s.surfaces {
		if t, isHit := surface.Intersect(ray); isHit && t < minT {
			minT = t
			closest = surface
			found = true
		}
	}

	return closest, minT, found
}

// occluded reports whether any surface other than self blocks the ray
func (s *Scene) occluded(ray core.Ray, self geometry.Surface) bool {
	for _, surface := range s.surfaces {
		if surface == self {
			continue
		}
		if _, isHit := surface.Intersect(ray); isHit {
			return true
		}
	}
	return false
}

// RenderImage traces the whole frame and returns it without persisting it
func (s *Scene) RenderImage(options renderer.Options) (*image.RGBA, renderer.RenderStats, error) {
	raytracer, err := renderer.NewRaytracer(s, options)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return raytracer.RenderFrame()
}

// Render traces a width x height frame using every CPU and hands it to the sink
func (s *Scene) Render(width, height int, sink imageio.Sink) (renderer.RenderStats, error) {
	options := renderer.DefaultOptions()
	options.Width = width
	options.Height = height
	return s.RenderWithOptions(options, sink)
}

// RenderWithOptions traces a frame and hands it to the sink
func (s *Scene) RenderWithOptions(options renderer.Options, sink imageio.Sink) (renderer.RenderStats, error) {
	img, stats, err := s.RenderImage(options)
	if err != nil {
		return stats, err
	}

	if err := sink.Write(img); err != nil {
		return stats, fmt.Errorf("failed to write image: %w", err)
	}

	return stats, nil
}
