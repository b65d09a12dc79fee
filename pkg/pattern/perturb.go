package pattern

import "github.com/kwhite/go-whitted-raytracer/pkg/core"

// Perturb decorates a base pattern by jittering the sample point with
// Perlin noise before delegating. Amplitude scales the displacement,
// Frequency scales the noise field, and Octaves/Persistence control detail.
type Perturb struct {
	base
	Base        Pattern
	Amplitude   float64
	Frequency   float64
	Octaves     int
	Persistence float64
}

// NewPerturb creates a noise-perturbed pattern with the given amplitude and
// frequency around the base pattern
func NewPerturb(basePattern Pattern, amplitude, frequency float64) *Perturb {
	return &Perturb{
		base:        newBase(),
		Base:        basePattern,
		Amplitude:   amplitude,
		Frequency:   frequency,
		Octaves:     3,
		Persistence: 0.8,
	}
}

// ColorAt jitters each coordinate by an independent noise sample and
// evaluates the base pattern at the displaced point. The three samples are
// taken at z-offset copies of the point so the displacement is not the same
// in every axis.
func (p *Perturb) ColorAt(point core.Tuple) core.Color {
	x := point.X * p.Frequency
	y := point.Y * p.Frequency
	z := point.Z * p.Frequency

	// noise is in [0,1]; recenter to [-0.5,0.5] so the jitter has no bias
	jx := (OctavePerlin(x, y, z, p.Octaves, p.Persistence) - 0.5) * p.Amplitude
	jy := (OctavePerlin(x, y, z+1, p.Octaves, p.Persistence) - 0.5) * p.Amplitude
	jz := (OctavePerlin(x, y, z+2, p.Octaves, p.Persistence) - 0.5) * p.Amplitude

	displaced := core.NewPoint(point.X+jx, point.Y+jy, point.Z+jz)
	return AtObject(p.Base, displaced)
}
