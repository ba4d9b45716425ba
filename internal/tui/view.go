package tui

import (
	"image"
	stdcolor "image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/surface"
	"github.com/alexisbeaulieu97/huepick/internal/tui/components"
	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

var (
	checkerLight = stdcolor.NRGBA{R: 204, G: 204, B: 204, A: 255}
	checkerDark  = stdcolor.NRGBA{R: 153, G: 153, B: 153, A: 255}
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("huepick"), ""}

	if m.picker.Width() == 0 || m.picker.Height() == 0 {
		sections = append(sections, warnStyle.Render("terminal too small"))
	} else {
		gap := strings.Repeat(" ", gapCols)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			strings.Repeat(" ", marginCols),
			m.renderSurface(surface.Main), gap,
			m.renderSurface(surface.Spectrum), gap,
			m.renderSurface(surface.Opacity),
		))
	}

	sections = append(sections, statusStyle.Render(m.status()), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) status() string {
	readout := components.NewReadout(components.ReadoutData{
		Color: m.picker.Color(),
		Hue:   m.picker.Hue(),
		Hex:   m.hex,
	})
	return lipgloss.JoinHorizontal(lipgloss.Top,
		readout.View(), "  ", m.meter.View(m.picker.Opacity().Float()))
}

// renderSurface draws two pixel rows per terminal row with upper half blocks.
func (m Model) renderSurface(kind surface.Kind) string {
	img := m.picker.Surface(kind).Image()
	b := img.Bounds()
	marker := m.picker.Indicator(kind)

	var sb strings.Builder
	for row := 0; row < (b.Dy()+1)/2; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		top, bottom := 2*row, 2*row+1
		for x := 0; x < b.Dx(); x++ {
			upper := displayPixel(img, x, top)
			style := lipgloss.NewStyle().Foreground(terminalColor(upper))
			if bottom < b.Dy() {
				style = style.Background(terminalColor(displayPixel(img, x, bottom)))
			}

			glyph := "▀"
			if g, ok := markerGlyph(marker, x, row); ok {
				glyph = g
				style = style.Foreground(contrast(upper))
			}
			sb.WriteString(style.Render(glyph))
		}
	}
	return sb.String()
}

func markerGlyph(marker picker.Indicator, x, row int) (string, bool) {
	pos := marker.Position()
	if pos.Y < 0 || pos.Y/2 != row {
		return "", false
	}
	if marker.Kind() == surface.Main {
		if pos.X != x {
			return "", false
		}
		return "◆", true
	}
	return "━", true
}

// displayPixel composites translucent pixels over a checkerboard.
func displayPixel(img image.Image, x, y int) stdcolor.NRGBA {
	b := img.Bounds()
	px := stdcolor.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(stdcolor.NRGBA)
	if px.A == 255 {
		return px
	}
	bg := checkerLight
	if (x/2+y/2)%2 == 1 {
		bg = checkerDark
	}
	return surface.Over(px, bg)
}

func terminalColor(px stdcolor.NRGBA) lipgloss.Color {
	return lipgloss.Color(color.RGB(px.R, px.G, px.B).Hex())
}

func contrast(px stdcolor.NRGBA) lipgloss.Color {
	luma := 0.299*float64(px.R) + 0.587*float64(px.G) + 0.114*float64(px.B)
	if luma > 128 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
