package grid

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrUnknownFilter = errors.New("unknown filter field")
)

// View is everything a Surface needs for one full repaint.
type View struct {
	Columns  []Column
	Headers  []HeaderCell
	Fields   []FilterField
	Rows     []Row
	Criteria Criteria
	Sort     SortState
	Total    int // rows in the dataset before filtering
}

func (v View) Empty() bool { return len(v.Rows) == 0 }

// Surface paints a View. Each call replaces whatever was painted before.
type Surface interface {
	Render(v View) error
}

// SurfaceFunc adapts a plain function to Surface.
type SurfaceFunc func(View) error

func (f SurfaceFunc) Render(v View) error { return f(v) }

// Table coordinates sort and filter state over an immutable Dataset. Every
// state change recomputes the display as copy -> sort -> filter.
type Table struct {
	data     Dataset
	engine   *Engine
	sorter   *Sorter
	sort     SortState
	criteria Criteria
	display  []Row
}

type Option func(*Table)

func WithFields(fields []FilterField) Option {
	return func(t *Table) { t.engine = NewEngine(fields) }
}

func WithLocale(tag language.Tag) Option {
	return func(t *Table) { t.sorter = NewSorter(tag) }
}

func WithCriteria(c Criteria) Option {
	return func(t *Table) { t.criteria = c.Clone() }
}

func WithSort(s SortState) Option {
	return func(t *Table) { t.sort = s }
}

// New builds a table over data. Without options it filters on
// DefaultFields and collates in English.
func New(data Dataset, opts ...Option) *Table {
	t := &Table{
		data:     data,
		criteria: Criteria{},
	}
	for _, o := range opts {
		o(t)
	}
	if t.engine == nil {
		t.engine = NewEngine(DefaultFields())
	}
	if t.sorter == nil {
		t.sorter = NewSorter(language.English)
	}
	if t.sort.Key != "" && !t.data.HasColumn(t.sort.Key) {
		t.sort = SortState{}
	}
	t.refresh()
	return t
}

func (t *Table) Dataset() Dataset { return t.data }

func (t *Table) Columns() []Column { return t.data.Columns }

func (t *Table) Fields() []FilterField { return t.engine.Fields() }

func (t *Table) SortState() SortState { return t.sort }

func (t *Table) Criteria() Criteria { return t.criteria.Clone() }

// Direction is the header state of one column.
func (t *Table) Direction(key string) Direction { return t.sort.Direction(key) }

// Rows is the current display sequence. Callers must not modify it.
func (t *Table) Rows() []Row { return t.display }

// ClickHeader toggles key between ascending and descending; every other
// column drops back to neutral, so the first click on a fresh column always
// sorts ascending.
func (t *Table) ClickHeader(key string) error {
	if !t.data.HasColumn(key) {
		return fmt.Errorf("click header %q: %w", key, ErrUnknownColumn)
	}
	next := t.sort.Direction(key).Next()
	t.sort = SortState{Key: key, Ascending: next == Ascending}
	t.refresh()
	return nil
}

// Sort sets the sort state directly.
func (t *Table) Sort(key string, ascending bool) error {
	if !t.data.HasColumn(key) {
		return fmt.Errorf("sort by %q: %w", key, ErrUnknownColumn)
	}
	t.sort = SortState{Key: key, Ascending: ascending}
	t.refresh()
	return nil
}

// ClearSort returns to dataset order.
func (t *Table) ClearSort() {
	t.sort = SortState{}
	t.refresh()
}

// SetFilter updates one criterion; an empty value clears it.
func (t *Table) SetFilter(field, value string) error {
	if _, ok := t.engine.Field(field); !ok {
		return fmt.Errorf("set filter %q: %w", field, ErrUnknownFilter)
	}
	if value == "" {
		delete(t.criteria, field)
	} else {
		t.criteria[field] = value
	}
	t.refresh()
	return nil
}

func (t *Table) ClearFilters() {
	t.criteria = Criteria{}
	t.refresh()
}

// View snapshots the current state for a surface.
func (t *Table) View() View {
	headers := make([]HeaderCell, len(t.data.Columns))
	for i, c := range t.data.Columns {
		headers[i] = HeaderCell{Column: c, Dir: t.sort.Direction(c.Key)}
	}
	return View{
		Columns:  t.data.Columns,
		Headers:  headers,
		Fields:   t.engine.Fields(),
		Rows:     t.display,
		Criteria: t.criteria.Clone(),
		Sort:     t.sort,
		Total:    len(t.data.Rows),
	}
}

func (t *Table) Render(s Surface) error {
	return s.Render(t.View())
}

func (t *Table) refresh() {
	if t.data.Empty() {
		t.display = nil
		return
	}
	sorted := t.sorter.Sort(t.data.Rows, t.sort.Key, t.sort.Ascending)
	t.display = t.engine.Apply(sorted, t.criteria)
}
