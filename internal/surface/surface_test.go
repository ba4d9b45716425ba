package surface

import (
	stdcolor "image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

func TestResizeAllocatesBacking(t *testing.T) {
	t.Parallel()

	s := New(Main)
	require.True(t, s.Empty())

	s.Resize(20, 10)
	require.False(t, s.Empty())
	require.Equal(t, 20, s.Backing().Bounds().Dx())
	require.Equal(t, 10, s.Backing().Bounds().Dy())

	s.Resize(-3, 4)
	require.True(t, s.Empty())
	require.Zero(t, s.Width())
}

func TestFixedDensityScalesBacking(t *testing.T) {
	t.Parallel()

	s := New(Spectrum)
	s.Resize(21, 180)
	FixedDensity(2).Scale(s)

	require.Equal(t, 2.0, s.Density())
	require.Equal(t, 42, s.Backing().Bounds().Dx())
	require.Equal(t, 360, s.Backing().Bounds().Dy())

	FixedDensity(0).Scale(s)
	require.Equal(t, 1.0, s.Density())
}

func TestPaintUsesLogicalCoordinates(t *testing.T) {
	t.Parallel()

	s := New(Main)
	s.Resize(4, 4)
	FixedDensity(2).Scale(s)

	s.Paint(func(lx, ly float64) stdcolor.NRGBA {
		return stdcolor.NRGBA{R: uint8(lx * 10), G: uint8(ly * 10), A: 255}
	})

	require.Equal(t, uint8(30), s.At(3, 0).R)
	require.Equal(t, uint8(20), s.At(0, 2).G)

	img := s.Image()
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())
}

func TestGradientInterpolatesBetweenStops(t *testing.T) {
	t.Parallel()

	g := NewGradient(
		StopOf(1, color.White),
		StopOf(0, color.Black),
	)

	require.Equal(t, NRGBA(color.Black), g.At(0))
	require.Equal(t, NRGBA(color.White), g.At(1))
	require.Equal(t, stdcolor.NRGBA{R: 128, G: 128, B: 128, A: 255}, g.At(0.5))
	require.Equal(t, NRGBA(color.Black), g.At(-2))
	require.Equal(t, NRGBA(color.White), g.At(7))
}

func TestGradientInterpolatesPremultiplied(t *testing.T) {
	t.Parallel()

	g := NewGradient(
		StopOf(0, color.RGBA(255, 255, 255, 0)),
		StopOf(1, color.Black),
	)

	mid := g.At(0.5)
	require.Equal(t, uint8(0), mid.R)
	require.Equal(t, uint8(128), mid.A)
}

func TestOverComposites(t *testing.T) {
	t.Parallel()

	base := NRGBA(color.Red)
	require.Equal(t, base, Over(stdcolor.NRGBA{}, base))
	require.Equal(t, NRGBA(color.Black), Over(NRGBA(color.Black), base))

	half := Over(stdcolor.NRGBA{A: 128}, base)
	require.Equal(t, uint8(255), half.A)
	require.InDelta(t, 127, int(half.R), 1)
}

func TestParam(t *testing.T) {
	t.Parallel()

	require.Zero(t, Param(0, 1))
	require.Zero(t, Param(0, 180))
	require.InDelta(t, 1.0, Param(179, 180), 1e-12)
	require.InDelta(t, 0.5, Param(2, 5), 1e-12)
}

func TestSamplers(t *testing.T) {
	t.Parallel()

	s := New(Opacity)
	s.Resize(3, 3)
	s.Paint(func(lx, ly float64) stdcolor.NRGBA {
		return stdcolor.NRGBA{R: uint8(lx), G: uint8(ly), B: 9, A: uint8(ly * 100)}
	})

	require.Equal(t, color.RGB(2, 1, 9), ColorAt(s, 2, 1))
	require.Equal(t, color.RGB(0, 2, 9), HueAt(s, 2))
	require.InDelta(t, 0.39, OpacityAt(s, 1), 1e-9)
	require.InDelta(t, 0.78, OpacityAt(s, 2), 1e-9)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "main", Main.String())
	require.Equal(t, "spectrum", Spectrum.String())
	require.Equal(t, "opacity", Opacity.String())
	require.Equal(t, []Kind{Main, Spectrum, Opacity}, Kinds)
}
