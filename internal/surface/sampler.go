package surface

import (
	"math"

	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

// ColorAt reads the RGB channels of the pixel at (x, y). The caller keeps
// (x, y) inside [0, Width-1] x [0, Height-1].
func ColorAt(s *Surface, x, y int) color.Color {
	px := s.At(x, y)
	return color.RGB(px.R, px.G, px.B)
}

// HueAt reads the RGB channels of the column 0 pixel at row y.
func HueAt(s *Surface, y int) color.Color {
	return ColorAt(s, 0, y)
}

// OpacityAt reads the alpha of the column 0 pixel at row y as a value in
// [0, 1] rounded to two decimal places.
func OpacityAt(s *Surface, y int) float64 {
	a := s.At(0, y).A
	return math.Round(float64(a)/255*100) / 100
}
