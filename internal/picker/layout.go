package picker

import (
	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
)

// Sizes are the logical dimensions of the picker's surfaces.
type Sizes struct {
	Width      int
	Height     int
	StripWidth int
}

// Layout places the surfaces in the global pointer coordinate space.
type Layout interface {
	Origin(kind surface.Kind, sizes Sizes) geometry.Point
}

// RowLayout puts the main field, the spectrum strip and the opacity strip
// side by side from Anchor, separated by Gap pixels.
type RowLayout struct {
	Anchor geometry.Point
	Gap    int
}

// Origin implements Layout.
func (l RowLayout) Origin(kind surface.Kind, sizes Sizes) geometry.Point {
	x := l.Anchor.X
	switch kind {
	case surface.Spectrum:
		x += sizes.Width + l.Gap
	case surface.Opacity:
		x += sizes.Width + sizes.StripWidth + 2*l.Gap
	}
	return geometry.Pt(x, l.Anchor.Y)
}
