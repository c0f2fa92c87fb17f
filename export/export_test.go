package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-table/grid"
)

func usersView(t *testing.T) grid.View {
	t.Helper()
	data := grid.NewDataset([]string{"id", "status", "username"}, []grid.Row{
		{"id": grid.Int(1), "status": grid.Str("Active"), "username": grid.Str("Alice")},
		{"id": grid.Int(2), "status": grid.Str("Inactive"), "username": grid.Str("Bob, Jr")},
		{"id": grid.Int(3), "status": grid.Str("Active"), "username": grid.Str("Carol")},
	})
	tbl := grid.New(data)
	require.NoError(t, tbl.SetFilter("status", "Active"))
	require.NoError(t, tbl.Sort("id", false))
	return tbl.View()
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{"a.csv": CSV, "b.XLSX": XLSX, "c.html": HTML, "d.htm": HTML}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFromPath("e.pdf")
	assert.ErrorContains(t, err, "unsupported export extension")
}

func TestWriteCSV_DisplayOrderAndFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, usersView(t)))
	assert.Equal(t, "id,status,username\n3,Active,Carol\n1,Active,Alice\n", buf.String())
}

func TestWriteCSV_Quoting(t *testing.T) {
	data := grid.NewDataset([]string{"username"}, []grid.Row{{"username": grid.Str("Bob, Jr")}})
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, grid.New(data).View()))
	assert.Equal(t, "username\n\"Bob, Jr\"\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, usersView(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, sheetName, f.GetSheetName(0))
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id", "status", "username"},
		{"3", "Active", "Carol"},
		{"1", "Active", "Alice"},
	}, rows)

	typ, err := f.GetCellType(sheetName, "A2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ, "ids are stored as numbers")
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	v := usersView(t)

	for _, name := range []string{"out.csv", "out.xlsx", "out.html"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ToFile(path, v), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}

	html, err := os.ReadFile(filepath.Join(dir, "out.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<td>Carol</td>")
	assert.NotContains(t, string(html), "<form")

	err = ToFile(filepath.Join(dir, "out.txt"), v)
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "out.txt"))
	assert.True(t, os.IsNotExist(statErr), "nothing written for an unknown extension")
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", CSV.ContentType())
	assert.Contains(t, XLSX.ContentType(), "spreadsheetml")
	assert.Equal(t, "xlsx", XLSX.String())
}
