package grid

import "fmt"

// Event is a UI interaction that changes table state. Adapters build these
// from whatever their host delivers (key presses, query strings) and hand
// them to Table.Handle.
type Event interface {
	apply(t *Table) error
}

// HeaderClick is a click on a column header.
type HeaderClick struct {
	Key string
}

// FilterChange carries the new value of one filter input.
type FilterChange struct {
	Field string
	Value string
}

// ClearFilters empties every criterion.
type ClearFilters struct{}

// SortBy sets the sort without going through the toggle.
type SortBy struct {
	Key       string
	Ascending bool
}

func (e HeaderClick) apply(t *Table) error { return t.ClickHeader(e.Key) }

func (e FilterChange) apply(t *Table) error { return t.SetFilter(e.Field, e.Value) }

func (ClearFilters) apply(t *Table) error {
	t.ClearFilters()
	return nil
}

func (e SortBy) apply(t *Table) error { return t.Sort(e.Key, e.Ascending) }

// Handle applies ev. On error the table state is unchanged.
func (t *Table) Handle(ev Event) error {
	if ev == nil {
		return fmt.Errorf("handle: nil event")
	}
	return ev.apply(t)
}

// HandleAndRender applies ev and repaints s. A rejected event still
// repaints so the surface never shows stale input.
func (t *Table) HandleAndRender(ev Event, s Surface) error {
	err := t.Handle(ev)
	if rerr := t.Render(s); rerr != nil {
		return rerr
	}
	return err
}
