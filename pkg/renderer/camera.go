// Package renderer maps pixels to rays and accumulates the resulting colors
// into a canvas, either serially or across CPU cores.
package renderer

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/world"
)

// Camera projects the world onto a hsize x vsize raster through a view
// transform. The canvas sits one unit in front of the camera; field of view
// is the angle subtended by the larger raster dimension.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	inverse    core.Matrix
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera with the identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform sets the view transform, usually built by core.ViewTransform
func (c *Camera) SetTransform(t core.Matrix) {
	c.transform = t
	c.inverse = t.Inverse()
}

// PixelSize returns the world-space size of one square pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the ray from the camera through the center of the
// given pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the canvas is at z=-1, with x increasing leftward in camera space
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MulTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()
	return core.NewRay(origin, direction)
}

// Render traces every pixel serially
func (c *Camera) Render(w *world.World) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		c.renderRow(w, canvas, y)
	}
	return canvas
}

// RenderParallel traces rows concurrently across the available cores. The
// output is identical to Render: rows never overlap, so workers write to
// disjoint canvas regions.
func (c *Camera) RenderParallel(w *world.World) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for y := 0; y < c.VSize; y++ {
		y := y
		g.Go(func() error {
			c.renderRow(w, canvas, y)
			return nil
		})
	}
	// workers return no errors; Wait only synchronizes
	g.Wait()
	return canvas
}

func (c *Camera) renderRow(w *world.World, canvas *Canvas, y int) {
	for x := 0; x < c.HSize; x++ {
		canvas.SetPixel(x, y, w.ColorAt(c.RayForPixel(x, y), world.MaxDepth))
	}
}
