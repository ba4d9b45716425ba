package picker

import "github.com/alexisbeaulieu97/huepick/pkg/color"

// ChangeEvent is emitted every time the picker's color is set.
type ChangeEvent struct {
	Color color.Color
	// Formatted is Color in its canonical rgb()/rgba() form.
	Formatted string
}

// Observer receives change notifications.
type Observer interface {
	OnChange(ev ChangeEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev ChangeEvent)

// OnChange implements Observer.
func (f ObserverFunc) OnChange(ev ChangeEvent) { f(ev) }

type observerEntry struct {
	id       int
	observer Observer
}

type observers struct {
	nextID  int
	entries []observerEntry
}

func (o *observers) add(obs Observer) int {
	o.nextID++
	o.entries = append(o.entries, observerEntry{id: o.nextID, observer: obs})
	return o.nextID
}

func (o *observers) remove(id int) {
	for i, entry := range o.entries {
		if entry.id == id {
			o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
			return
		}
	}
}

func (o *observers) notify(ev ChangeEvent) {
	for _, entry := range append([]observerEntry(nil), o.entries...) {
		entry.observer.OnChange(ev)
	}
}
