package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
)

func TestViewShowsTitleAndStatus(t *testing.T) {
	m := newSizedModel(t, 80, 30)

	view := m.View()
	assert.Contains(t, view, "huepick")
	assert.Contains(t, view, "opacity")
	assert.Contains(t, view, "quit")
}

func TestViewPlacesSurfacesOnLayoutRows(t *testing.T) {
	m := newSizedModel(t, 80, 30)

	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), headerRows+24)

	// 48 pixel rows fit in 24 terminal rows starting right after the header.
	row := []rune(lines[headerRows])
	require.Greater(t, len(row), marginCols+60)
	assert.Equal(t, ' ', row[0])
	assert.Contains(t, lines[headerRows], "▀")
	assert.Contains(t, lines[headerRows+23], "▀")
}

func TestRenderSurfaceDrawsMarkers(t *testing.T) {
	m := newSizedModel(t, 80, 30)

	main := m.renderSurface(surface.Main)
	rows := strings.Split(main, "\n")
	require.Len(t, rows, 24)
	// The unpicked main marker sits in the top-right corner.
	assert.Contains(t, rows[0], "◆")

	spectrum := strings.Split(m.renderSurface(surface.Spectrum), "\n")
	assert.Contains(t, spectrum[0], "━")

	opacity := strings.Split(m.renderSurface(surface.Opacity), "\n")
	assert.Contains(t, opacity[len(opacity)-1], "━")
}

func TestMarkerGlyph(t *testing.T) {
	p := picker.New(picker.DefaultOptions())
	p.UpdateMain(geometry.Pt(10, 7))
	marker := p.Indicator(surface.Main)

	_, ok := markerGlyph(marker, 10, 3)
	assert.True(t, ok)
	_, ok = markerGlyph(marker, 11, 3)
	assert.False(t, ok)
	_, ok = markerGlyph(marker, 10, 4)
	assert.False(t, ok)

	g, ok := markerGlyph(p.Indicator(surface.Spectrum), 3, 0)
	assert.True(t, ok)
	assert.Equal(t, "━", g)
}

func TestDisplayPixelCompositesTranslucency(t *testing.T) {
	s := surface.New(surface.Opacity)
	s.Resize(4, 4)
	s.Paint(func(_, _ float64) color.NRGBA { return color.NRGBA{A: 0} })

	assert.Equal(t, checkerLight, displayPixel(s.Image(), 0, 0))
	assert.Equal(t, checkerDark, displayPixel(s.Image(), 2, 0))

	s.Paint(func(_, _ float64) color.NRGBA { return color.NRGBA{R: 10, G: 20, B: 30, A: 255} })
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, displayPixel(s.Image(), 1, 1))
}
