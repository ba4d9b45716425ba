package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter renders a value in [0, 1] as a labelled bar.
type Meter struct {
	bar   progress.Model
	label string
}

// NewMeter creates a meter with the given label and bar width.
func NewMeter(label string, width int) Meter {
	bar := progress.New(progress.WithSolidFill("252"), progress.WithoutPercentage())
	bar.Width = width
	return Meter{bar: bar, label: label}
}

// View renders the meter at value v. Values outside [0, 1] are clamped.
func (m Meter) View(v float64) string {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(0, math.Min(1, v))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s %3.0f%%", m.label, v*100))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", m.bar.ViewAs(v))
}
