package picker

import (
	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/internal/render"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

const (
	DefaultWidth           = 180
	DefaultHeight          = 180
	DefaultIndicatorRadius = 3.5
	DefaultStripRatio      = 0.12
)

// Options configures a Picker. Zero fields take the defaults listed in
// DefaultOptions, except Width and Height, where zero means "not laid out",
// and Hue, which is used as given.
type Options struct {
	Width           int
	Height          int
	IndicatorRadius float64
	// StripRatio is the spectrum and opacity strip width as a fraction of Width.
	StripRatio float64
	Hue        color.Color

	Scaler   surface.Scaler
	Renderer render.Renderer
	Layout   Layout
	Logger   *logger.Logger
}

// DefaultOptions returns a 180x180 picker over a pure red hue.
func DefaultOptions() Options {
	return Options{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		IndicatorRadius: DefaultIndicatorRadius,
		StripRatio:      DefaultStripRatio,
		Hue:             color.Red,
		Scaler:          surface.FixedDensity(1),
		Renderer:        render.Gradients{},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.IndicatorRadius <= 0 {
		o.IndicatorRadius = def.IndicatorRadius
	}
	if o.StripRatio <= 0 || o.StripRatio > 1 {
		o.StripRatio = def.StripRatio
	}
	if o.Scaler == nil {
		o.Scaler = def.Scaler
	}
	if o.Renderer == nil {
		o.Renderer = def.Renderer
	}
	if o.Layout == nil {
		o.Layout = RowLayout{}
	}
	o.Hue = o.Hue.Opaque()
	return o
}
