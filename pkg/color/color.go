// Package color holds the picker's color value and its canonical textual forms.
package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Alpha is an optional opacity in [0, 1]. The zero value means fully opaque
// with no alpha channel.
type Alpha struct {
	value float64
	set   bool
}

// Opaque returns the absent alpha channel.
func Opaque() Alpha {
	return Alpha{}
}

// AlphaOf returns an alpha channel holding v clamped to [0, 1].
func AlphaOf(v float64) Alpha {
	switch {
	case math.IsNaN(v), v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	return Alpha{value: v, set: true}
}

// Value returns the stored alpha and whether one is present.
func (a Alpha) Value() (float64, bool) {
	return a.value, a.set
}

// IsSet reports whether an alpha channel is present.
func (a Alpha) IsSet() bool {
	return a.set
}

// Float returns the effective opacity, 1 when absent.
func (a Alpha) Float() float64 {
	if !a.set {
		return 1
	}
	return a.value
}

func (a Alpha) String() string {
	if !a.set {
		return "opaque"
	}
	return formatAlpha(a.value)
}

// Color is an sRGB color with an optional alpha channel.
type Color struct {
	R uint8
	G uint8
	B uint8
	A Alpha
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA returns a color carrying an explicit alpha channel.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: AlphaOf(a)}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a Alpha) Color {
	c.A = a
	return c
}

// Opaque returns c without an alpha channel.
func (c Color) Opaque() Color {
	c.A = Opaque()
	return c
}

// String returns the canonical form, see Format.
func (c Color) String() string {
	return Format(c)
}

// Hex returns the #rrggbb form of the RGB channels. Alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Format renders c as "rgb(R, G, B)" when it has no alpha channel and as
// "rgba(R, G, B, A)" otherwise.
func Format(c Color) string {
	if !c.A.set {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A.value))
}

func formatAlpha(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
