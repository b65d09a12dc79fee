package renderer

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/kwhite/go-whitted-raytracer/pkg/world"
)

// tileSize is the edge length of the square tiles handed to workers
const tileSize = 32

// Options configures a render
type Options struct {
	// MaxDepth bounds reflection and refraction recursion; zero or negative
	// selects the default
	MaxDepth int
	// Workers is the number of parallel tile workers; zero or negative
	// selects one per CPU
	Workers int
}

// tileTask is one rectangle of the canvas for a worker to shade. Tiles have
// disjoint bounds, so workers write to the shared canvas without locking.
type tileTask struct {
	bounds image.Rectangle
}

// Render shades every pixel of the canvas by tracing a ray per pixel
// through the world, distributing tiles across a worker pool. The world is
// validated up front so a malformed scene fails instead of rendering
// garbage.
func Render(cam *Camera, w *world.World, opts Options) (*Canvas, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = world.MaxDepth
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	canvas := NewCanvas(cam.HSize, cam.VSize)

	tilesX := (cam.HSize + tileSize - 1) / tileSize
	tilesY := (cam.VSize + tileSize - 1) / tileSize
	tasks := make(chan tileTask, tilesX*tilesY)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				renderTile(cam, w, canvas, task.bounds, maxDepth)
			}
		}()
	}

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			bounds := image.Rect(tx*tileSize, ty*tileSize,
				min((tx+1)*tileSize, cam.HSize),
				min((ty+1)*tileSize, cam.VSize))
			tasks <- tileTask{bounds: bounds}
		}
	}
	close(tasks)
	wg.Wait()

	return canvas, nil
}

// renderTile shades the pixels within bounds
func renderTile(cam *Camera, w *world.World, canvas *Canvas, bounds image.Rectangle, maxDepth int) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := cam.RayForPixel(x, y)
			canvas.Set(x, y, w.ColorAt(ray, maxDepth))
		}
	}
}
