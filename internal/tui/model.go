// Package tui runs the picker in a terminal. Each terminal cell shows two
// vertically stacked pixels, and left-button drags become pointer events.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/pointer"
	"github.com/alexisbeaulieu97/huepick/internal/tui/components"
)

const (
	headerRows = 2 // title and a blank line
	footerRows = 4 // blank line, status, help and one spare
	marginCols = 1
	gapCols    = 2
)

// session holds state shared by every copy of the Model.
type session struct {
	changes int
	last    string
}

// Model is the Bubbletea model for the interactive picker.
type Model struct {
	picker  *picker.Picker
	pointer *pointer.Dispatcher
	log     *logger.Logger
	session *session

	keys  keyMap
	help  help.Model
	meter components.Meter

	maxWidth   int
	maxHeight  int
	stripRatio float64

	width  int
	height int

	hex      bool
	picked   bool
	quitting bool
}

// NewModel builds a picker from opts laid out for the terminal. The picker
// never grows beyond opts.Width x opts.Height.
func NewModel(opts picker.Options, log *logger.Logger) Model {
	if opts.StripRatio <= 0 || opts.StripRatio > 1 {
		opts.StripRatio = picker.DefaultStripRatio
	}
	opts.Layout = picker.RowLayout{
		Anchor: geometry.Pt(marginCols, headerRows*2),
		Gap:    gapCols,
	}
	opts.Logger = log

	p := picker.New(opts)
	s := &session{last: p.Color().String()}
	p.Subscribe(picker.ObserverFunc(func(ev picker.ChangeEvent) {
		s.changes++
		s.last = ev.Formatted
	}))

	return Model{
		picker:     p,
		pointer:    p.Dispatcher(),
		log:        log.With("component", "tui"),
		session:    s,
		keys:       defaultKeyMap(),
		help:       help.New(),
		meter:      components.NewMeter("opacity", 12),
		maxWidth:   opts.Width,
		maxHeight:  opts.Height,
		stripRatio: opts.StripRatio,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Picker exposes the underlying picker.
func (m Model) Picker() *picker.Picker {
	return m.picker
}

// Changes returns how many change notifications the picker has emitted.
func (m Model) Changes() int {
	return m.session.changes
}

// Result returns the picked color, or "" when the user quit without picking.
func (m Model) Result() string {
	if !m.picked {
		return ""
	}
	return m.session.last
}

// fit returns the largest picker size that fits the terminal.
func (m Model) fit() (width, height int) {
	avail := m.width - marginCols - 2*gapCols - 1
	width = min(m.maxWidth, avail)
	for width > 0 && width+2*picker.StripWidthFor(width, m.stripRatio) > avail {
		width--
	}
	height = min(m.maxHeight, (m.height-headerRows-footerRows)*2)
	return max(width, 0), max(height, 0)
}
