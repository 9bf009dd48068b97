package lights

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/material"
)

// Lighting evaluates the Phong model at a surface point. intensity scales
// the diffuse and specular terms by the visible fraction of the light, so a
// fully shadowed point keeps only its ambient contribution.
func Lighting(m material.Material, object material.Object, light Light, point, eye, normal core.Tuple, intensity float64) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = material.ColorAtObject(m.Pattern, object, point)
	}

	effective := color.Hadamard(light.Intensity())
	ambient := effective.Scale(m.Ambient)
	if intensity == 0 {
		return ambient
	}

	lightv := light.Position().Subtract(point).Normalize()
	diffuse := core.Black()
	specular := core.Black()

	// a negative cosine means the light is behind the surface
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal >= 0 {
		diffuse = effective.Scale(m.Diffuse * lightDotNormal)

		reflectv := lightv.Negate().Reflect(normal)
		reflectDotEye := reflectv.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity().Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse.Add(specular).Scale(intensity))
}
