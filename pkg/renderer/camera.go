// Package renderer maps scene rays to image pixels: the camera turns pixel
// coordinates into world rays, and the render loop shades tiles of the
// canvas in parallel.
package renderer

import (
	"math"

	"github.com/kwhite/go-whitted-raytracer/pkg/core"
)

// Camera projects rays through a virtual canvas one unit in front of it.
// The transform is the world-to-camera view matrix; its cached inverse maps
// camera-space pixel positions back to world space.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Transform
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for the given canvas size and horizontal field
// of view in radians, looking down -z from the origin
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fov,
		transform:   core.IdentityTransform(),
	}

	// the canvas is one unit away, so half the field of view spans
	// tan(fov/2) world units
	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)
	return c
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Transform {
	return c.transform
}

// SetTransform replaces the camera's view transform
func (c *Camera) SetTransform(t core.Transform) {
	c.transform = t
}

// LookAt orients the camera at from toward to with the given up hint
func (c *Camera) LookAt(from, to, up core.Tuple) error {
	view, err := core.ViewTransform(from, to, up)
	if err != nil {
		return err
	}
	t, err := core.NewTransform(view)
	if err != nil {
		return err
	}
	c.transform = t
	return nil
}

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the pixel
// at (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// offsets from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// untransformed canvas coordinates: +x is left because the camera
	// looks toward -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transform.ApplyInverse(core.NewPoint(worldX, worldY, -1))
	origin := c.transform.ApplyInverse(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).NormalizeUnchecked()

	return core.NewRay(origin, direction)
}
