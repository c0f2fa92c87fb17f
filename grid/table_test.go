package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var sampleKeys = []string{"id", "dateCreated", "status", "username", "phoneNumber"}

func sampleTable(opts ...Option) *Table {
	return New(NewDataset(sampleKeys, sampleRows()), opts...)
}

func TestNew_DerivesColumnsFromKeys(t *testing.T) {
	tbl := sampleTable()
	cols := tbl.Columns()
	require.Len(t, cols, 5)
	assert.Equal(t, Column{Key: "dateCreated", Label: "DATE CREATED"}, cols[1])
	assert.Equal(t, Column{Key: "phoneNumber", Label: "PHONE NUMBER"}, cols[4])
	assert.Equal(t, []string{"1", "2", "12", "21"}, ids(tbl.Rows()), "no sort keeps dataset order")
}

func TestExampleFromDocs(t *testing.T) {
	data := NewDataset([]string{"id", "status", "username"}, []Row{
		{"id": Int(1), "status": Str("Active"), "username": Str("Alice")},
		{"id": Int(2), "status": Str("Inactive"), "username": Str("Bob")},
	})

	tbl := New(data)
	require.NoError(t, tbl.SetFilter("status", "Active"))
	assert.Equal(t, []string{"1"}, ids(tbl.Rows()))

	tbl = New(data)
	require.NoError(t, tbl.Sort("id", false))
	assert.Equal(t, []string{"2", "1"}, ids(tbl.Rows()))
}

func TestClickHeader_StateMachine(t *testing.T) {
	tbl := sampleTable()

	assert.Equal(t, Neutral, tbl.Direction("id"))

	require.NoError(t, tbl.ClickHeader("id"))
	assert.Equal(t, Ascending, tbl.Direction("id"))
	assert.Equal(t, []string{"1", "2", "12", "21"}, ids(tbl.Rows()))

	require.NoError(t, tbl.ClickHeader("id"))
	assert.Equal(t, Descending, tbl.Direction("id"))
	assert.Equal(t, []string{"21", "12", "2", "1"}, ids(tbl.Rows()))

	require.NoError(t, tbl.ClickHeader("username"))
	assert.Equal(t, Neutral, tbl.Direction("id"), "other column resets")
	assert.Equal(t, Ascending, tbl.Direction("username"))
	assert.Equal(t, []string{"1", "2", "21", "12"}, ids(tbl.Rows()))

	require.NoError(t, tbl.ClickHeader("id"))
	assert.Equal(t, Ascending, tbl.Direction("id"), "a reset column starts ascending again")
	assert.Equal(t, Neutral, tbl.Direction("username"))

	require.NoError(t, tbl.ClickHeader("id"))
	require.NoError(t, tbl.ClickHeader("id"))
	assert.Equal(t, Ascending, tbl.Direction("id"), "descending toggles back to ascending")
}

func TestClickHeader_UnknownColumn(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.ClickHeader("id"))

	err := tbl.ClickHeader("missing")
	assert.True(t, errors.Is(err, ErrUnknownColumn))
	assert.Equal(t, SortState{Key: "id", Ascending: true}, tbl.SortState(), "state untouched")
}

func TestSort_NumbersCompareNumerically(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.Sort("id", true))
	assert.Equal(t, []string{"1", "2", "12", "21"}, ids(tbl.Rows()), "12 after 2, not lexicographic")
}

func TestSort_IsIdempotentAndReversible(t *testing.T) {
	tbl := sampleTable()

	require.NoError(t, tbl.Sort("username", true))
	first := ids(tbl.Rows())
	require.NoError(t, tbl.Sort("username", true))
	assert.Equal(t, first, ids(tbl.Rows()))

	require.NoError(t, tbl.Sort("username", false))
	desc := ids(tbl.Rows())
	for i := range first {
		assert.Equal(t, first[i], desc[len(desc)-1-i])
	}
}

func TestSort_DoesNotMutateDataset(t *testing.T) {
	tbl := sampleTable()
	before := ids(tbl.Dataset().Rows)
	require.NoError(t, tbl.Sort("id", false))
	require.NoError(t, tbl.SetFilter("status", "Active"))
	assert.Equal(t, before, ids(tbl.Dataset().Rows))
}

func TestSortThenFilter(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.SetFilter("status", "Inactive"))
	require.NoError(t, tbl.ClickHeader("id"))
	require.NoError(t, tbl.ClickHeader("id"))
	assert.Equal(t, []string{"21", "2"}, ids(tbl.Rows()), "sorting keeps the active filter")

	require.NoError(t, tbl.SetFilter("status", ""))
	assert.Equal(t, []string{"21", "12", "2", "1"}, ids(tbl.Rows()), "clearing the filter keeps the sort")
}

func TestSetFilter_UnknownField(t *testing.T) {
	tbl := sampleTable()
	err := tbl.SetFilter("colour", "red")
	assert.True(t, errors.Is(err, ErrUnknownFilter))
	assert.Empty(t, tbl.Criteria())
}

func TestClearFilters(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.SetFilter("status", "Active"))
	require.NoError(t, tbl.SetFilter("username", "mal"))
	assert.Equal(t, []string{"12"}, ids(tbl.Rows()))

	tbl.ClearFilters()
	assert.Len(t, tbl.Rows(), 4)
	assert.False(t, tbl.Criteria().Active())
}

func TestEmptyDatasetRendersNothing(t *testing.T) {
	tbl := New(NewDataset(sampleKeys, nil))
	v := tbl.View()
	assert.Empty(t, v.Headers)
	assert.Empty(t, v.Rows)
	assert.Zero(t, v.Total)

	var calls int
	err := tbl.Render(SurfaceFunc(func(v View) error {
		calls++
		assert.True(t, v.Empty())
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestView_HeadersCarryDirection(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.ClickHeader("status"))
	require.NoError(t, tbl.ClickHeader("status"))

	v := tbl.View()
	for _, h := range v.Headers {
		if h.Key == "status" {
			assert.Equal(t, Descending, h.Dir)
			assert.Equal(t, "sort-desc", h.Dir.CSSClass())
			continue
		}
		assert.Equal(t, Neutral, h.Dir)
	}
	assert.Equal(t, 4, v.Total)
}

func TestHandle_Events(t *testing.T) {
	tbl := sampleTable()
	var painted []View
	surface := SurfaceFunc(func(v View) error {
		painted = append(painted, v)
		return nil
	})

	require.NoError(t, tbl.HandleAndRender(HeaderClick{Key: "id"}, surface))
	require.NoError(t, tbl.HandleAndRender(FilterChange{Field: "username", Value: "o"}, surface))
	err := tbl.HandleAndRender(FilterChange{Field: "nope", Value: "x"}, surface)
	assert.ErrorIs(t, err, ErrUnknownFilter)
	require.NoError(t, tbl.HandleAndRender(ClearFilters{}, surface))
	require.NoError(t, tbl.HandleAndRender(SortBy{Key: "id", Ascending: false}, surface))

	require.Len(t, painted, 5)
	assert.Equal(t, []string{"2", "21"}, ids(painted[1].Rows))
	assert.Equal(t, painted[1].Rows, painted[2].Rows, "rejected event repaints unchanged state")
	assert.Len(t, painted[3].Rows, 4)
	assert.Equal(t, []string{"21", "12", "2", "1"}, ids(painted[4].Rows))

	assert.Error(t, tbl.Handle(nil))
}

func TestWithOptions(t *testing.T) {
	tbl := sampleTable(
		WithSort(SortState{Key: "id", Ascending: false}),
		WithCriteria(Criteria{"status": "Active"}),
		WithLocale(language.German),
	)
	assert.Equal(t, []string{"12", "1"}, ids(tbl.Rows()))

	ignored := sampleTable(WithSort(SortState{Key: "nope"}))
	assert.False(t, ignored.SortState().Active())
}

func TestWithFields_RestrictsFilters(t *testing.T) {
	tbl := sampleTable(WithFields([]FilterField{{Key: "who", Column: "username", Kind: KindText}}))
	require.NoError(t, tbl.SetFilter("who", "bob"))
	assert.Equal(t, []string{"2"}, ids(tbl.Rows()))
	assert.ErrorIs(t, tbl.SetFilter("status", "Active"), ErrUnknownFilter)
}
