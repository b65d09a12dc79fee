package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/kwhite/go-whitted-raytracer/pkg/renderer"
	"github.com/kwhite/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 800, "Output width in pixels")
	height := flag.Int("height", 600, "Output height in pixels")
	depth := flag.Int("depth", 0, "Reflection/refraction recursion depth (0 = default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	output := flag.String("out", "", "Output PNG path (default render_<scene>_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	w, cam, err := scene.Build(*sceneName, *width, *height)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %q at %dx%d...\n", *sceneName, *width, *height)

	startTime := time.Now()
	canvas, err := renderer.Render(cam, w, renderer.Options{
		MaxDepth: *depth,
		Workers:  *workers,
	})
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = fmt.Sprintf("render_%s_%s.png", *sceneName, timestamp)
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
