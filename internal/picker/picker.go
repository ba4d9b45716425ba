// Package picker coordinates the color picker's surfaces: it turns pointer
// updates into color, hue and opacity changes, keeps the dependent surfaces
// rendered and notifies observers of every new color.
//
// A Picker is not safe for concurrent use. Every method runs to completion
// on the caller's goroutine, which is expected to be the single UI loop.
package picker

import (
	"math"

	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/internal/render"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

// Picker holds the widget state. The color always derives from the main
// field at the recorded position combined with hue and opacity; setting the
// color directly never feeds back into hue or opacity.
type Picker struct {
	opts Options
	log  *logger.Logger

	main     *surface.Surface
	spectrum *surface.Surface
	ramp     *surface.Surface

	width  int
	height int

	color   color.Color
	hue     color.Color
	opacity color.Alpha

	colorPos   Selection
	huePos     Selection
	opacityPos Selection
	// picked is set once the user moves the main indicator.
	picked bool

	mainIndicator     Indicator
	spectrumIndicator Indicator
	opacityIndicator  Indicator

	observers observers
}

// New builds a picker, lays it out at the configured size and renders every
// surface once. The initial color is the hue itself, at the top-right of
// the main field.
func New(opts Options) *Picker {
	opts = opts.withDefaults()

	p := &Picker{
		opts:              opts,
		log:               opts.Logger.With("component", "picker"),
		main:              surface.New(surface.Main),
		spectrum:          surface.New(surface.Spectrum),
		ramp:              surface.New(surface.Opacity),
		color:             opts.Hue,
		hue:               opts.Hue,
		mainIndicator:     Indicator{kind: surface.Main, radius: opts.IndicatorRadius},
		spectrumIndicator: Indicator{kind: surface.Spectrum},
		opacityIndicator:  Indicator{kind: surface.Opacity},
	}

	p.spectrumIndicator.place(geometry.Pt(0, 0))
	p.Resize(opts.Width, opts.Height)
	// Narrow fields do not reach the hue at the corner.
	p.updateColor()

	return p
}

// Subscribe registers obs for change notifications and returns a function
// that removes it.
func (p *Picker) Subscribe(obs Observer) (unsubscribe func()) {
	id := p.observers.add(obs)
	return func() { p.observers.remove(id) }
}

// Color returns the current composite color.
func (p *Picker) Color() color.Color { return p.color }

// Hue returns the current hue. It never carries alpha.
func (p *Picker) Hue() color.Color { return p.hue }

// Opacity returns the current opacity. An unset alpha means fully opaque.
func (p *Picker) Opacity() color.Alpha { return p.opacity }

// Width returns the main field width.
func (p *Picker) Width() int { return p.width }

// Height returns the height shared by all surfaces.
func (p *Picker) Height() int { return p.height }

// StripWidth returns the width of the spectrum and opacity strips.
func (p *Picker) StripWidth() int {
	return StripWidthFor(p.width, p.opts.StripRatio)
}

// StripWidthFor returns the strip width of a main field width wide.
func StripWidthFor(width int, ratio float64) int {
	if width <= 0 {
		return 0
	}
	return max(1, int(float64(width)*ratio))
}

// Sizes returns the configured surface dimensions.
func (p *Picker) Sizes() Sizes {
	return Sizes{Width: p.width, Height: p.height, StripWidth: p.StripWidth()}
}

// ColorPosition returns the main field point the color derives from.
func (p *Picker) ColorPosition() Selection { return p.colorPos }

// HuePosition returns the last spectrum point picked by the user.
func (p *Picker) HuePosition() Selection { return p.huePos }

// OpacityPosition returns the last opacity point picked by the user.
func (p *Picker) OpacityPosition() Selection { return p.opacityPos }

// Surface returns the surface of the given kind.
func (p *Picker) Surface(kind surface.Kind) *surface.Surface {
	switch kind {
	case surface.Spectrum:
		return p.spectrum
	case surface.Opacity:
		return p.ramp
	default:
		return p.main
	}
}

// Indicator returns the marker of the given surface.
func (p *Picker) Indicator(kind surface.Kind) Indicator {
	switch kind {
	case surface.Spectrum:
		return p.spectrumIndicator
	case surface.Opacity:
		return p.opacityIndicator
	default:
		return p.mainIndicator
	}
}

// SetColor replaces the color and notifies observers. Hue, opacity and the
// recorded position are left alone.
func (p *Picker) SetColor(c color.Color) *Picker {
	p.color = c
	ev := ChangeEvent{Color: c, Formatted: color.Format(c)}
	p.log.With("color", ev.Formatted).Debug("color changed")
	p.observers.notify(ev)
	return p
}

// SetHue replaces the hue, repaints the main field and recomputes the color.
func (p *Picker) SetHue(c color.Color) *Picker {
	p.hue = c.Opaque()
	p.RenderMain()
	p.updateColor()
	return p
}

// SetOpacity stores v clamped to [0, 1] and recomputes the color. Full
// opacity is stored as no alpha channel. NaN is ignored.
func (p *Picker) SetOpacity(v float64) *Picker {
	if math.IsNaN(v) {
		p.log.Warn("ignoring NaN opacity")
		return p
	}
	a := color.AlphaOf(v)
	if a.Float() == 1 {
		a = color.Opaque()
	}
	p.opacity = a
	p.updateColor()
	return p
}

func (p *Picker) updateColor() {
	pos, ok := p.colorPos.Point()
	if !ok {
		return
	}
	bounds := geometry.Rect{Width: p.main.Width(), Height: p.main.Height()}
	if !bounds.Contains(pos) {
		return
	}
	p.SetColor(surface.ColorAt(p.main, pos.X, pos.Y).WithAlpha(p.opacity))
}

// ResizeOption adjusts a SetWidth or SetHeight call.
type ResizeOption func(*resizeConfig)

type resizeConfig struct {
	render bool
}

// WithoutRender skips the repaint that normally follows a resize.
func WithoutRender() ResizeOption {
	return func(c *resizeConfig) { c.render = false }
}

func resizeConfigFrom(opts []ResizeOption) resizeConfig {
	cfg := resizeConfig{render: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SetWidth sets the main field width and repaints every surface. Until the
// user moves the main indicator it stays at the top-right corner. Once it
// has been moved, a repainting resize resamples the color at the clamped
// position.
// Negative widths are treated as zero, which leaves the picker unsized.
func (p *Picker) SetWidth(n int, opts ...ResizeOption) *Picker {
	cfg := resizeConfigFrom(opts)
	p.width = p.dimension("width", n)

	switch {
	case !p.picked && p.width == 0:
		p.colorPos = Selection{}
	case !p.picked:
		corner := geometry.Pt(p.width-1, 0)
		p.colorPos = Selected(corner)
		p.mainIndicator.place(corner)
	default:
		p.clampSelection()
	}

	if cfg.render {
		p.repaint()
	}
	return p
}

// SetHeight sets the height of every surface and repaints them. Until the
// user moves the opacity indicator it stays on the bottom row.
// Negative heights are treated as zero.
func (p *Picker) SetHeight(n int, opts ...ResizeOption) *Picker {
	cfg := resizeConfigFrom(opts)
	p.height = p.dimension("height", n)
	if p.picked {
		p.clampSelection()
	}
	if !p.opacityPos.Recorded() {
		p.opacityIndicator.place(geometry.Pt(0, max(p.height-1, 0)))
	}

	if cfg.render {
		p.repaint()
	}
	return p
}

// repaint renders after a resize and keeps a user-picked color in step with
// the pixel under its clamped position.
func (p *Picker) repaint() {
	p.Render()
	if p.picked {
		p.updateColor()
	}
}

// Size sets width and height to n with a single repaint.
func (p *Picker) Size(n int) *Picker {
	return p.SetWidth(n, WithoutRender()).SetHeight(n)
}

// Resize sets width and height with a single repaint.
func (p *Picker) Resize(width, height int) *Picker {
	return p.SetWidth(width, WithoutRender()).SetHeight(height)
}

func (p *Picker) dimension(name string, n int) int {
	if n < 0 {
		p.log.WithFields(map[string]any{"dimension": name, "value": n}).Warn("negative dimension clamped to zero")
		return 0
	}
	return n
}

// clampSelection keeps a user-picked main position inside the new bounds.
func (p *Picker) clampSelection() {
	pos, ok := p.colorPos.Point()
	if !ok || p.width <= 0 || p.height <= 0 {
		return
	}
	pos = geometry.Rect{Width: p.width, Height: p.height}.ClampLocal(pos)
	p.colorPos = Selected(pos)
	p.mainIndicator.place(pos)
}

func (p *Picker) renderState() render.State {
	return render.State{
		Width:      p.width,
		Height:     p.height,
		StripWidth: p.StripWidth(),
		Hue:        p.hue,
		Scaler:     p.opts.Scaler,
	}
}

// Render repaints the main field, the spectrum and the opacity ramp, in
// that order.
func (p *Picker) Render() {
	p.RenderMain()
	p.RenderSpectrum()
	p.RenderOpacity()
}

// RenderMain repaints the main field for the current hue.
func (p *Picker) RenderMain() {
	p.opts.Renderer.RenderMain(p.main, p.renderState())
	p.logRender(p.main)
}

// RenderSpectrum repaints the hue strip.
func (p *Picker) RenderSpectrum() {
	p.opts.Renderer.RenderSpectrum(p.spectrum, p.renderState())
	p.logRender(p.spectrum)
}

// RenderOpacity repaints the opacity ramp.
func (p *Picker) RenderOpacity() {
	p.opts.Renderer.RenderOpacity(p.ramp, p.renderState())
	p.logRender(p.ramp)
}

func (p *Picker) logRender(s *surface.Surface) {
	p.log.WithFields(map[string]any{
		"surface": s.Kind().String(),
		"width":   s.Width(),
		"height":  s.Height(),
		"density": s.Density(),
	}).Debug("surface rendered")
}
