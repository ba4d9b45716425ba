// Package render paints the picker's gradients onto its surfaces.
package render

import (
	stdcolor "image/color"

	"github.com/alexisbeaulieu97/huepick/internal/surface"
	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

// State is the picker state a render pass depends on.
type State struct {
	Width      int
	Height     int
	StripWidth int
	Hue        color.Color
	Scaler     surface.Scaler
}

// Renderer paints each surface from State. Implementations resize the
// surface, let the scaler adjust its density and then paint it.
type Renderer interface {
	RenderMain(s *surface.Surface, st State)
	RenderSpectrum(s *surface.Surface, st State)
	RenderOpacity(s *surface.Surface, st State)
}

// SpectrumStops are the hue strip's color stops from top to bottom.
var SpectrumStops = surface.NewGradient(
	surface.StopOf(0, color.RGB(255, 0, 0)),
	surface.StopOf(0.15, color.RGB(255, 0, 255)),
	surface.StopOf(0.33, color.RGB(0, 0, 255)),
	surface.StopOf(0.49, color.RGB(0, 255, 255)),
	surface.StopOf(0.67, color.RGB(0, 255, 0)),
	surface.StopOf(0.84, color.RGB(255, 255, 0)),
	surface.StopOf(1, color.RGB(255, 0, 0)),
)

// shadeStops darken the main field from nothing at the top to black at the bottom.
var shadeStops = surface.NewGradient(
	surface.StopOf(0, color.RGBA(255, 255, 255, 0)),
	surface.StopOf(1, color.Black),
)

// opacityStops ramp black from transparent at the top to opaque at the bottom.
var opacityStops = surface.NewGradient(
	surface.StopOf(0, color.RGBA(0, 0, 0, 0)),
	surface.StopOf(1, color.Black),
)

// Gradients is the default Renderer.
type Gradients struct{}

var _ Renderer = Gradients{}

// RenderMain paints white to hue left to right, shaded transparent to black
// top to bottom.
func (Gradients) RenderMain(s *surface.Surface, st State) {
	prepare(s, st.Width, st.Height, st.Scaler)

	tint := surface.NewGradient(
		surface.StopOf(0, color.White),
		surface.StopOf(1, st.Hue.Opaque()),
	)
	w, h := s.Width(), s.Height()
	s.Paint(func(lx, ly float64) stdcolor.NRGBA {
		base := tint.At(surface.Param(lx, w))
		return surface.Over(shadeStops.At(surface.Param(ly, h)), base)
	})
}

// RenderSpectrum paints the hue stops top to bottom.
func (Gradients) RenderSpectrum(s *surface.Surface, st State) {
	prepare(s, st.StripWidth, st.Height, st.Scaler)

	h := s.Height()
	s.Paint(func(_, ly float64) stdcolor.NRGBA {
		return SpectrumStops.At(surface.Param(ly, h))
	})
}

// RenderOpacity paints the alpha ramp top to bottom.
func (Gradients) RenderOpacity(s *surface.Surface, st State) {
	prepare(s, st.StripWidth, st.Height, st.Scaler)

	h := s.Height()
	s.Paint(func(_, ly float64) stdcolor.NRGBA {
		return opacityStops.At(surface.Param(ly, h))
	})
}

func prepare(s *surface.Surface, width, height int, scaler surface.Scaler) {
	s.Resize(width, height)
	if scaler != nil {
		scaler.Scale(s)
	}
}
