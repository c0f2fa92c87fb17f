package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-table/grid"
)

const usersCSV = "\ufeffid,dateCreated,status,username,phoneNumber\n" +
	"1,2020-06-15,Active,Alice,012345678\n" +
	"2,2019-12-31,Inactive,Bob,987654321\n" +
	",,,,\n" +
	"10,2021-01-01,Active,Carol\n"

func keys(ds grid.Dataset) []string {
	out := make([]string, len(ds.Columns))
	for i, c := range ds.Columns {
		out[i] = c.Key
	}
	return out
}

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(usersCSV), Options{TextColumns: []string{"phoneNumber"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "dateCreated", "status", "username", "phoneNumber"}, keys(ds))
	require.Equal(t, 3, ds.Len(), "blank record skipped")

	assert.True(t, ds.Rows[0].Get("id").IsNumber())
	assert.False(t, ds.Rows[0].Get("phoneNumber").IsNumber(), "forced text column")
	assert.Equal(t, "012345678", ds.Rows[0].Get("phoneNumber").String())
	assert.False(t, ds.Rows[0].Get("dateCreated").IsNumber())
	assert.Equal(t, "", ds.Rows[2].Get("phoneNumber").String(), "short record padded")
}

func TestReadCSV_NumericDetection(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(usersCSV), Options{})
	require.NoError(t, err)
	assert.True(t, ds.Rows[0].Get("phoneNumber").IsNumber())
	assert.Equal(t, "012345678", ds.Rows[0].Get("phoneNumber").String(), "raw text survives parsing")
}

func TestReadCSV_HeaderOnlyIsEmpty(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("id,name\n"), Options{})
	require.NoError(t, err)
	assert.True(t, ds.Empty())
	assert.Empty(t, ds.Columns)
}

func TestReadCSV_BlankHeaderNames(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("id,,name\n1,x,y\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Column_2", "name"}, keys(ds))
}

func TestReadCSV_DuplicateHeaderNames(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("id,name,name,name_2\n1,Alice,Smith,x\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "name_2", "name_2_2"}, keys(ds))
	assert.Equal(t, "Alice", ds.Rows[0].Get("name").String())
	assert.Equal(t, "Smith", ds.Rows[0].Get("name_2").String())
	assert.Equal(t, "x", ds.Rows[0].Get("name_2_2").String())
}

func TestReadCSV_NonFiniteIsText(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("id,nick\n1,Nan\n2,inf\n3,Infinity\n"), Options{})
	require.NoError(t, err)
	assert.True(t, ds.Rows[0].Get("id").IsNumber())
	for _, r := range ds.Rows {
		assert.False(t, r.Get("nick").IsNumber(), r.Get("nick").String())
	}
}

func TestReadJSON_KeepsKeyOrder(t *testing.T) {
	in := `[
		{"username": "Alice", "id": 1, "active": true, "phoneNumber": "012", "meta": {"a": 1}, "gone": null},
		{"id": 2, "username": "Bob", "extra": "ignored"}
	]`
	ds, err := ReadJSON(strings.NewReader(in), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"username", "id", "active", "phoneNumber", "meta", "gone"}, keys(ds))
	require.Equal(t, 2, ds.Len())
	assert.True(t, ds.Rows[0].Get("id").IsNumber())
	assert.False(t, ds.Rows[0].Get("phoneNumber").IsNumber(), "JSON strings stay strings")
	assert.Equal(t, "true", ds.Rows[0].Get("active").String())
	assert.Equal(t, `{"a":1}`, ds.Rows[0].Get("meta").String())
	assert.Equal(t, "", ds.Rows[0].Get("gone").String())
	assert.Equal(t, "", ds.Rows[1].Get("active").String())
}

func TestReadJSON_TextColumns(t *testing.T) {
	ds, err := ReadJSON(strings.NewReader(`[{"zip": 1234}]`), Options{TextColumns: []string{"zip"}})
	require.NoError(t, err)
	assert.False(t, ds.Rows[0].Get("zip").IsNumber())
	assert.Equal(t, "1234", ds.Rows[0].Get("zip").String())
}

func TestReadJSON_Errors(t *testing.T) {
	for _, in := range []string{`{"id": 1}`, `[1, 2]`, `[{"id": 1}`, ``} {
		_, err := ReadJSON(strings.NewReader(in), Options{})
		assert.Error(t, err, in)
	}
}

func TestReadJSON_EmptyArray(t *testing.T) {
	ds, err := ReadJSON(strings.NewReader(`[]`), Options{})
	require.NoError(t, err)
	assert.True(t, ds.Empty())
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"id", "username"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{7, "Elton"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{11, "Karin"}))

	path := filepath.Join(t.TempDir(), "users.xlsx")
	require.NoError(t, f.SaveAs(path))

	ds, err := LoadAuto(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "username"}, keys(ds))
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "11", ds.Rows[1].Get("id").String())
	assert.True(t, ds.Rows[1].Get("id").IsNumber())
}

func TestLoadAuto(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "users.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(usersCSV), 0o644))
	jsonPath := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"id":1}]`), 0o644))

	ds, err := LoadAuto(csvPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	ds, err = LoadAuto(jsonPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	_, err = LoadAuto(filepath.Join(dir, "users.txt"), Options{})
	assert.ErrorContains(t, err, "unsupported file extension")

	_, err = LoadAuto(filepath.Join(dir, "missing.csv"), Options{})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	ds := Generate(GenerateOptions{Count: 200, Seed: 42, Now: now})

	assert.Equal(t, GeneratedKeys, keys(ds))
	require.Equal(t, 200, ds.Len())

	statuses := map[string]int{}
	for i, r := range ds.Rows {
		id, ok := r.Get("id").Float()
		require.True(t, ok)
		assert.Equal(t, float64(i+1), id)

		date := r.Get("dateCreated").String()
		_, err := time.Parse(grid.DateLayout, date)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, date, "2012-01-01")
		assert.LessOrEqual(t, date, "2024-03-01")

		assert.Len(t, r.Get("phoneNumber").String(), 9)
		assert.NotEmpty(t, r.Get("username").String())
		statuses[r.Get("status").String()]++
	}
	assert.Len(t, statuses, 2)
	assert.Positive(t, statuses["Active"])
	assert.Positive(t, statuses["Inactive"])
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	a := Generate(GenerateOptions{Count: 20, Seed: 7, Now: now})
	b := Generate(GenerateOptions{Count: 20, Seed: 7, Now: now})
	assert.Equal(t, a, b)

	assert.True(t, Generate(GenerateOptions{Count: 0}).Empty())
}
