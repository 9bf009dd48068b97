// Package material defines Phong reflectance parameters and the procedural
// patterns that can override a material's flat color.
package material

import "github.com/whitted-go/raytracer/pkg/core"

// Refractive indices of common media
const (
	RefractiveVacuum  = 1.0
	RefractiveAir     = 1.00029
	RefractiveWater   = 1.333
	RefractiveGlass   = 1.52
	RefractiveDiamond = 2.417
)

// Material holds the reflective properties of a surface. Shapes own their
// material by value, so mutating one shape's material never aliases another.
type Material struct {
	Color core.Color
	// Ambient is the light reflected from the environment, in [0,1]
	Ambient float64
	// Diffuse is the matte reflection; depends on the angle between the
	// light and the surface normal, in [0,1]
	Diffuse float64
	// Specular is the reflection of the light source itself, in [0,1]
	Specular float64
	// Shininess tightens the specular highlight; larger is tighter, typically 10-200
	Shininess float64
	// Reflective mixes in the recursively traced reflection, in [0,1]
	Reflective float64
	// Transparency mixes in the recursively traced refraction, in [0,1]
	Transparency    float64
	RefractiveIndex float64
	// Pattern overrides Color when non-nil
	Pattern Pattern
}

// Default returns the standard matte white material
func Default() Material {
	return Material{
		Color:           core.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: RefractiveVacuum,
	}
}

// Glass returns a fully transparent, reflective material
func Glass() Material {
	m := Default()
	m.Transparency = 1
	m.Reflective = 0.9
	m.RefractiveIndex = RefractiveGlass
	return m
}
