package picker

import (
	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
)

// Selection is the last point accepted on a surface, if any.
type Selection struct {
	pos      geometry.Point
	recorded bool
}

// Selected returns a recorded selection at p.
func Selected(p geometry.Point) Selection {
	return Selection{pos: p, recorded: true}
}

// Point returns the selected point and whether one was recorded.
func (s Selection) Point() (geometry.Point, bool) {
	return s.pos, s.recorded
}

// Recorded reports whether a point was recorded.
func (s Selection) Recorded() bool {
	return s.recorded
}

// Is reports whether the selection holds exactly p.
func (s Selection) Is(p geometry.Point) bool {
	return s.recorded && s.pos == p
}

// Indicator is the visual marker on a surface.
type Indicator struct {
	kind   surface.Kind
	radius float64
	pos    geometry.Point
}

// Kind reports which surface the marker belongs to.
func (i Indicator) Kind() surface.Kind { return i.kind }

// Position returns the marked surface-local point. Strip markers only use Y.
func (i Indicator) Position() geometry.Point { return i.pos }

// Offset returns the marker's top-left corner relative to its surface. The
// main marker is a circle centered on the point; strip markers are a two
// pixel bar centered on the row.
func (i Indicator) Offset() (left, top float64) {
	if i.kind == surface.Main {
		return float64(i.pos.X) - i.radius, float64(i.pos.Y) - i.radius
	}
	return 0, float64(i.pos.Y) - 1
}

func (i *Indicator) place(p geometry.Point) {
	i.pos = p
}
