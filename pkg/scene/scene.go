// Package scene provides the built-in scenes selectable from the command
// line. Each scene builds a world and a camera sized for the requested
// output.
package scene

import (
	"fmt"
	"sort"

	"github.com/kwhite/go-whitted-raytracer/pkg/renderer"
	"github.com/kwhite/go-whitted-raytracer/pkg/world"
)

// Builder constructs a scene's world and camera for the given canvas size
type Builder func(width, height int) (*world.World, *renderer.Camera, error)

var builders = map[string]Builder{
	"default":  NewDefaultScene,
	"glass":    NewGlassScene,
	"showcase": NewShowcaseScene,
}

// Build looks up a scene by name and constructs it
func Build(name string, width, height int) (*world.World, *renderer.Camera, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder(width, height)
}

// Names lists the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
