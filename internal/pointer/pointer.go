// Package pointer routes press, move and release events to the surface
// being dragged.
package pointer

import (
	"github.com/alexisbeaulieu97/huepick/internal/geometry"
)

// Phase is the stage of a pointer gesture.
type Phase int

const (
	Press Phase = iota
	Move
	Release
)

func (p Phase) String() string {
	switch p {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Event is a pointer event at a global position.
type Event struct {
	Phase Phase
	Pos   geometry.Point
}

// Target is a surface that accepts pointer updates.
type Target interface {
	Bounds() geometry.Rect
	Update(global geometry.Point)
}

// Dispatcher tracks which target, if any, is being dragged. A press over a
// target starts a drag on it, moves anywhere keep updating it and a release
// anywhere ends it.
type Dispatcher struct {
	targets []Target
	active  Target
}

// NewDispatcher returns a dispatcher over targets. Earlier targets win when
// bounds overlap.
func NewDispatcher(targets ...Target) *Dispatcher {
	return &Dispatcher{targets: targets}
}

// Dispatch delivers ev and reports whether a target received an update.
func (d *Dispatcher) Dispatch(ev Event) bool {
	switch ev.Phase {
	case Press:
		target := d.hit(ev.Pos)
		if target == nil {
			return false
		}
		d.active = target
		target.Update(ev.Pos)
		return true
	case Move:
		if d.active == nil {
			return false
		}
		d.active.Update(ev.Pos)
		return true
	case Release:
		d.active = nil
	}
	return false
}

// Dragging returns the target currently being dragged.
func (d *Dispatcher) Dragging() (Target, bool) {
	return d.active, d.active != nil
}

func (d *Dispatcher) hit(p geometry.Point) Target {
	for _, target := range d.targets {
		if target.Bounds().Contains(p) {
			return target
		}
	}
	return nil
}
