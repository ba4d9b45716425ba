package picker

import (
	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/pointer"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
)

// Bounds returns the rendered extent of a surface in global coordinates.
func (p *Picker) Bounds(kind surface.Kind) geometry.Rect {
	s := p.Surface(kind)
	return geometry.Rect{
		Min:    p.opts.Layout.Origin(kind, p.Sizes()),
		Width:  s.Width(),
		Height: s.Height(),
	}
}

// localize converts a global pointer position into a clamped point on the
// surface. It reports false when the surface has nothing to sample.
func (p *Picker) localize(kind surface.Kind, global geometry.Point) (geometry.Point, bool) {
	bounds := p.Bounds(kind)
	if bounds.Empty() {
		return geometry.Point{}, false
	}
	return bounds.ClampLocal(geometry.LocalPosition(bounds, global)), true
}

// UpdateMain handles a pointer update over the main field. Repeating the
// last accepted point does nothing.
func (p *Picker) UpdateMain(global geometry.Point) {
	pos, ok := p.localize(surface.Main, global)
	if !ok || p.colorPos.Is(pos) {
		return
	}

	c := surface.ColorAt(p.main, pos.X, pos.Y).WithAlpha(p.opacity)
	p.colorPos = Selected(pos)
	p.picked = true
	p.SetColor(c)
	p.mainIndicator.place(pos)
}

// UpdateSpectrum handles a pointer update over the hue strip. Only the
// vertical position matters.
func (p *Picker) UpdateSpectrum(global geometry.Point) {
	pos, ok := p.localize(surface.Spectrum, global)
	if !ok {
		return
	}
	pos.X = 0
	if p.huePos.Is(pos) {
		return
	}

	p.SetHue(surface.HueAt(p.spectrum, pos.Y))
	p.huePos = Selected(pos)
	p.spectrumIndicator.place(pos)
}

// UpdateOpacity handles a pointer update over the opacity ramp. Only the
// vertical position matters.
func (p *Picker) UpdateOpacity(global geometry.Point) {
	pos, ok := p.localize(surface.Opacity, global)
	if !ok {
		return
	}
	pos.X = 0
	if p.opacityPos.Is(pos) {
		return
	}

	p.SetOpacity(surface.OpacityAt(p.ramp, pos.Y))
	p.opacityPos = Selected(pos)
	p.opacityIndicator.place(pos)
}

// Update routes a pointer update to the handler of kind.
func (p *Picker) Update(kind surface.Kind, global geometry.Point) {
	switch kind {
	case surface.Main:
		p.UpdateMain(global)
	case surface.Spectrum:
		p.UpdateSpectrum(global)
	case surface.Opacity:
		p.UpdateOpacity(global)
	}
}

type target struct {
	picker *Picker
	kind   surface.Kind
}

func (t target) Bounds() geometry.Rect { return t.picker.Bounds(t.kind) }

func (t target) Update(global geometry.Point) { t.picker.Update(t.kind, global) }

// Target adapts one surface's handler for a pointer.Dispatcher.
func (p *Picker) Target(kind surface.Kind) pointer.Target {
	return target{picker: p, kind: kind}
}

// Targets returns every surface's target in render order.
func (p *Picker) Targets() []pointer.Target {
	targets := make([]pointer.Target, 0, len(surface.Kinds))
	for _, kind := range surface.Kinds {
		targets = append(targets, p.Target(kind))
	}
	return targets
}

// Dispatcher returns a pointer dispatcher over all three surfaces.
func (p *Picker) Dispatcher() *pointer.Dispatcher {
	return pointer.NewDispatcher(p.Targets()...)
}
