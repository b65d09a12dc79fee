package renderer

import (
	"image"
	"image/color"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Canvas is a width-by-height grid of linear colors accumulated during
// rendering
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

// At returns the color at (x, y)
func (c *Canvas) At(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// Set writes the color at (x, y)
func (c *Canvas) Set(x, y int, col core.Color) {
	c.pixels[y*c.Width+x] = col
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each channel
// to [0, 1]
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.At(x, y).Clamp(0, 1)
			img.Set(x, y, color.RGBA{
				R: uint8(px.R*255 + 0.5),
				G: uint8(px.G*255 + 0.5),
				B: uint8(px.B*255 + 0.5),
				A: 255,
			})
		}
	}
	return img
}
