package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/whitted-go/raytracer/pkg/core"
)

// ppmMaxLineLength keeps PPM output readable by older viewers
const ppmMaxLineLength = 70

// Canvas is a rectangular grid of colors in linear space
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// SetPixel writes the color at (x, y)
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	c.pixels[y*c.Width+x] = col
}

// channelTo8Bit clamps a linear channel to [0,1] and scales it to 0..255
func channelTo8Bit(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}

// WritePPM streams the canvas as plain-text PPM (P3). Sample lines are
// wrapped to 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	var line strings.Builder
	for y := 0; y < c.Height; y++ {
		line.Reset()
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			for _, v := range []float64{p.R, p.G, p.B} {
				sample := strconv.Itoa(int(channelTo8Bit(v)))
				if line.Len() > 0 && line.Len()+1+len(sample) > ppmMaxLineLength {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return fmt.Errorf("writing ppm row: %w", err)
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(sample)
			}
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return fmt.Errorf("writing ppm row: %w", err)
		}
	}
	return nil
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: channelTo8Bit(p.R),
				G: channelTo8Bit(p.G),
				B: channelTo8Bit(p.B),
				A: 255,
			})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
