package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huepick/pkg/color"
)

// ReadoutData describes the color shown by a Readout.
type ReadoutData struct {
	Color color.Color
	Hue   color.Color
	Hex   bool
}

// Readout renders a color swatch followed by its textual value and hue.
type Readout struct {
	data ReadoutData
}

// NewReadout creates a new Readout component.
func NewReadout(data ReadoutData) Readout {
	return Readout{data: data}
}

// Value returns the formatted color: rgb()/rgba() notation, or hex with
// the alpha percentage appended when the color is translucent.
func (r Readout) Value() string {
	c := r.data.Color
	if !r.data.Hex {
		return c.String()
	}
	if a, ok := c.A.Value(); ok {
		return fmt.Sprintf("%s %.0f%%", c.Hex(), a*100)
	}
	return c.Hex()
}

// View renders the readout.
func (r Readout) View() string {
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(r.data.Color.Hex())).Render("    ")
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	value := lipgloss.NewStyle().Bold(true)
	return strings.Join([]string{
		swatch,
		label.Render("color") + " " + value.Render(r.Value()),
		label.Render("hue") + " " + r.data.Hue.Hex(),
	}, "  ")
}
