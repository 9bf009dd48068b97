// Package lights defines the light sources and the Phong lighting model.
package lights

import (
	"github.com/whitted-go/raytracer/pkg/core"
)

// ShadowTester answers whether a surface point is occluded from a light
// sample position. The world implements this; the indirection keeps lights
// from depending on the scene graph.
type ShadowTester interface {
	IsShadowed(point, lightPosition core.Tuple) bool
}

// Light is a source of illumination. IntensityAt returns the fraction of
// the light's samples visible from the point, in [0,1].
type Light interface {
	Position() core.Tuple
	Intensity() core.Color
	IntensityAt(point core.Tuple, tester ShadowTester) float64
}

// PointLight radiates uniformly from a single position
type PointLight struct {
	position  core.Tuple
	intensity core.Color
}

// NewPointLight creates a point light at the given position
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

// Position returns the light's location
func (l *PointLight) Position() core.Tuple { return l.position }

// Intensity returns the light's color
func (l *PointLight) Intensity() core.Color { return l.intensity }

// IntensityAt is all or nothing for a point source
func (l *PointLight) IntensityAt(point core.Tuple, tester ShadowTester) float64 {
	if tester.IsShadowed(point, l.position) {
		return 0
	}
	return 1
}
