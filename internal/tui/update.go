package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huepick/internal/geometry"
	"github.com/alexisbeaulieu97/huepick/internal/pointer"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := m.fit()
		m.picker.Resize(w, h)
		m.log.WithFields(map[string]any{
			"terminal_width":  msg.Width,
			"terminal_height": msg.Height,
			"width":           w,
			"height":          h,
		}).Debug("picker resized")
		return m, nil
	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok {
			m.pointer.Dispatch(ev)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pick):
			m.picked = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Format):
			m.hex = !m.hex
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// pointerEvent maps a mouse cell to the pixel at the top of that cell.
func pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	pos := geometry.Pt(msg.X, msg.Y*2)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return pointer.Event{}, false
		}
		return pointer.Event{Phase: pointer.Press, Pos: pos}, true
	case tea.MouseActionMotion:
		return pointer.Event{Phase: pointer.Move, Pos: pos}, true
	case tea.MouseActionRelease:
		return pointer.Event{Phase: pointer.Release, Pos: pos}, true
	}
	return pointer.Event{}, false
}
