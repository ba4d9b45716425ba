package surface

import (
	stdcolor "image/color"
	"math"
	"sort"

	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

// Stop is a color at a position along a gradient.
type Stop struct {
	Offset float64 // 0 to 1
	Color  stdcolor.NRGBA
}

// StopOf converts a picker color to a gradient stop.
func StopOf(offset float64, c color.Color) Stop {
	return Stop{Offset: offset, Color: NRGBA(c)}
}

// NRGBA converts a picker color to a non-premultiplied pixel value.
func NRGBA(c color.Color) stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: channel(c.A.Float() * 255)}
}

// Gradient is a sorted set of color stops. Colors between stops are
// interpolated in premultiplied sRGB, and offsets outside [0, 1] pad to the
// end stops.
type Gradient []Stop

// NewGradient returns a gradient over a sorted copy of stops.
func NewGradient(stops ...Stop) Gradient {
	sorted := make(Gradient, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// At returns the color at offset t.
func (g Gradient) At(t float64) stdcolor.NRGBA {
	switch len(g) {
	case 0:
		return stdcolor.NRGBA{}
	case 1:
		return g[0].Color
	}

	t = math.Max(0, math.Min(1, t))
	idx := sort.Search(len(g), func(i int) bool {
		return g[i].Offset >= t
	})
	if idx == 0 {
		return g[0].Color
	}
	if idx >= len(g) {
		return g[len(g)-1].Color
	}

	from, to := g[idx-1], g[idx]
	if to.Offset == from.Offset {
		return from.Color
	}
	return lerp(from.Color, to.Color, (t-from.Offset)/(to.Offset-from.Offset))
}

// Param maps pixel i of an n pixel run to a gradient offset so that the
// first and last pixels land exactly on the end stops.
func Param(i float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return i / float64(n-1)
}

type premul struct {
	r, g, b, a float64
}

func toPremul(c stdcolor.NRGBA) premul {
	a := float64(c.A) / 255
	return premul{r: float64(c.R) * a, g: float64(c.G) * a, b: float64(c.B) * a, a: a}
}

func (p premul) nrgba() stdcolor.NRGBA {
	if p.a <= 0 {
		return stdcolor.NRGBA{}
	}
	return stdcolor.NRGBA{
		R: channel(p.r / p.a),
		G: channel(p.g / p.a),
		B: channel(p.b / p.a),
		A: channel(p.a * 255),
	}
}

func lerp(c1, c2 stdcolor.NRGBA, t float64) stdcolor.NRGBA {
	p1, p2 := toPremul(c1), toPremul(c2)
	return premul{
		r: p1.r + t*(p2.r-p1.r),
		g: p1.g + t*(p2.g-p1.g),
		b: p1.b + t*(p2.b-p1.b),
		a: p1.a + t*(p2.a-p1.a),
	}.nrgba()
}

// Over composites src onto dst with the source-over operator.
func Over(src, dst stdcolor.NRGBA) stdcolor.NRGBA {
	s, d := toPremul(src), toPremul(dst)
	k := 1 - s.a
	return premul{
		r: s.r + d.r*k,
		g: s.g + d.g*k,
		b: s.b + d.b*k,
		a: s.a + d.a*k,
	}.nrgba()
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
