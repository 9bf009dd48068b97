package world

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/material"
)

// surfaceEpsilon offsets shadow and secondary rays off the surface they
// originate from, preventing self-intersection acne.
const surfaceEpsilon = 1e-5

// Computations carries everything ShadeHit needs about one intersection,
// precomputed once.
type Computations struct {
	T       float64
	Object  geometry.Shape
	Point   core.Tuple
	EyeV    core.Tuple
	NormalV core.Tuple
	// ReflectV is the incoming direction mirrored about the normal
	ReflectV core.Tuple
	// Inside is set when the ray originated within the shape; the normal
	// is already flipped to face the eye.
	Inside bool
	// OverPoint sits just off the surface on the eye side, UnderPoint just
	// beneath it. Shadow and reflection rays start at the former,
	// refraction rays at the latter.
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	// N1 and N2 are the refractive indices either side of the surface
	// along the ray
	N1, N2 float64
}

// PrepareComputations resolves the shading state for a hit. The full sorted
// intersection list is needed to derive N1 and N2: it tells which shapes
// the ray is currently inside of when it reaches the hit.
func PrepareComputations(hit geometry.Intersection, r core.Ray, xs []geometry.Intersection) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  r.Position(hit.T),
		EyeV:   r.Direction.Negate(),
	}
	comps.NormalV = hit.Object.NormalAt(comps.Point, hit)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	comps.ReflectV = r.Direction.Reflect(comps.NormalV)

	offset := comps.NormalV.Multiply(surfaceEpsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the sorted intersections up to the hit, tracking
// which shapes contain the ray. N1 is the index of the medium being exited,
// N2 of the medium being entered.
func refractiveIndices(hit geometry.Intersection, xs []geometry.Intersection) (n1, n2 float64) {
	n1, n2 = material.RefractiveVacuum, material.RefractiveVacuum
	var containers []geometry.Shape

	for _, x := range xs {
		atHit := x == hit
		if atHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		found := -1
		for i, c := range containers {
			if c.ID() == x.Object.ID() {
				found = i
				break
			}
		}
		if found >= 0 {
			containers = append(containers[:found], containers[found+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the intersection: the
// fraction of light that reflects rather than refracts.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	// when leaving a denser medium, use the cosine of the refraction angle
	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
