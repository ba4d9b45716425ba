// Package surface holds the picker's drawable regions, the gradients painted
// onto them and the samplers that read colors back out of the pixels.
package surface

import (
	"image"
	stdcolor "image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Kind identifies one of the picker's three surfaces.
type Kind int

const (
	// Main is the 2D white/hue/black field.
	Main Kind = iota
	// Spectrum is the vertical hue strip.
	Spectrum
	// Opacity is the vertical alpha ramp.
	Opacity
)

// Kinds lists every surface in render order.
var Kinds = []Kind{Main, Spectrum, Opacity}

func (k Kind) String() string {
	switch k {
	case Main:
		return "main"
	case Spectrum:
		return "spectrum"
	case Opacity:
		return "opacity"
	default:
		return "unknown"
	}
}

// Surface is a rectangular drawable region. Width and Height are logical
// pixels; the backing buffer holds Width*Density x Height*Density pixels.
type Surface struct {
	kind    Kind
	width   int
	height  int
	density float64
	backing *image.NRGBA
}

// New returns an empty surface of the given kind.
func New(kind Kind) *Surface {
	return &Surface{
		kind:    kind,
		density: 1,
		backing: image.NewNRGBA(image.Rect(0, 0, 0, 0)),
	}
}

// Kind reports which surface this is.
func (s *Surface) Kind() Kind { return s.kind }

// Width returns the logical width.
func (s *Surface) Width() int { return s.width }

// Height returns the logical height.
func (s *Surface) Height() int { return s.height }

// Density returns the number of backing pixels per logical pixel.
func (s *Surface) Density() float64 { return s.density }

// Empty reports whether the surface has no logical pixels.
func (s *Surface) Empty() bool {
	return s.width <= 0 || s.height <= 0
}

// Resize sets the logical size and clears the backing buffer at density 1.
// Negative dimensions are treated as zero.
func (s *Surface) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.density = 1
	s.allocate()
}

// SetDensity changes the backing resolution and clears the buffer.
// Non-positive or non-finite densities fall back to 1.
func (s *Surface) SetDensity(density float64) {
	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		density = 1
	}
	s.density = density
	s.allocate()
}

func (s *Surface) allocate() {
	s.backing = image.NewNRGBA(image.Rect(0, 0, scaled(s.width, s.density), scaled(s.height, s.density)))
}

func scaled(n int, density float64) int {
	if n <= 0 {
		return 0
	}
	return max(1, int(math.Round(float64(n)*density)))
}

// Backing exposes the full-resolution pixel buffer.
func (s *Surface) Backing() *image.NRGBA {
	return s.backing
}

// Paint sets every backing pixel to fn evaluated at that pixel's logical
// coordinate. It is the only way pixel contents change.
func (s *Surface) Paint(fn func(lx, ly float64) stdcolor.NRGBA) {
	b := s.backing.Bounds()
	for by := b.Min.Y; by < b.Max.Y; by++ {
		ly := float64(by) / s.density
		for bx := b.Min.X; bx < b.Max.X; bx++ {
			s.backing.SetNRGBA(bx, by, fn(float64(bx)/s.density, ly))
		}
	}
}

// At returns the backing pixel under the logical point (x, y).
func (s *Surface) At(x, y int) stdcolor.NRGBA {
	b := s.backing.Bounds()
	bx := min(int(math.Round(float64(x)*s.density)), b.Max.X-1)
	by := min(int(math.Round(float64(y)*s.density)), b.Max.Y-1)
	return s.backing.NRGBAAt(bx, by)
}

// Image returns the surface at logical resolution, resampling the backing
// buffer when the density is not 1.
func (s *Surface) Image() image.Image {
	if s.density == 1 || s.Empty() {
		return s.backing
	}
	dst := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.backing, s.backing.Bounds(), xdraw.Src, nil)
	return dst
}

// Scaler adjusts a surface's backing resolution to the display's pixel
// density. It runs after every resize and before painting.
type Scaler interface {
	Scale(s *Surface)
}

// FixedDensity scales every surface to the same density.
type FixedDensity float64

// Scale implements Scaler.
func (d FixedDensity) Scale(s *Surface) {
	s.SetDensity(float64(d))
}
