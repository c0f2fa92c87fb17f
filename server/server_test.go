package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-table/grid"
)

func testServer() *WebServer {
	data := grid.NewDataset([]string{"id", "dateCreated", "status", "username"}, []grid.Row{
		{"id": grid.Int(1), "dateCreated": grid.Str("2020-06-15"), "status": grid.Str("Active"), "username": grid.Str("Alice")},
		{"id": grid.Int(2), "dateCreated": grid.Str("2019-12-31"), "status": grid.Str("Inactive"), "username": grid.Str("Bob")},
		{"id": grid.Int(12), "dateCreated": grid.Str("2021-01-01"), "status": grid.Str("Active"), "username": grid.Str("Carol")},
	})
	return New(data, Options{Title: "Users"})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestTablePage(t *testing.T) {
	rec := get(t, testServer().Handler(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Users</title>")
	assert.Contains(t, body, `<a href="/?click=id">ID</a>`)
	assert.Contains(t, body, "3 of 3 rows")
}

func TestTablePage_FiltersAndSortFromQuery(t *testing.T) {
	rec := get(t, testServer().Handler(), "/?status=Active&sort=id&dir=desc")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "2 of 3 rows")
	assert.Contains(t, body, `class="sort-desc"`)
	assert.NotContains(t, body, "<td>Bob</td>")
	assert.Less(t, bytes.Index(rec.Body.Bytes(), []byte("<td>Carol</td>")), bytes.Index(rec.Body.Bytes(), []byte("<td>Alice</td>")))
}

func TestTablePage_AllMeansNoStatusFilter(t *testing.T) {
	rec := get(t, testServer().Handler(), "/?status=All&dateFrom=2019-12-31")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2 of 3 rows", "dateFrom is exclusive")
}

func TestTablePage_UnknownSortIgnored(t *testing.T) {
	rec := get(t, testServer().Handler(), "/?sort=nope&dir=asc")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, `class="sort-asc"`)
	assert.NotContains(t, body, `name="sort"`)
	assert.Contains(t, body, "3 of 3 rows")
}

func TestHeaderClick_Redirects(t *testing.T) {
	h := testServer().Handler()

	rec := get(t, h, "/?click=id&status=Active")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?dir=asc&sort=id&status=Active", rec.Header().Get("Location"))

	rec = get(t, h, "/?click=id&sort=id&dir=asc")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?dir=desc&sort=id", rec.Header().Get("Location"))

	rec = get(t, h, "/?click=id&sort=id&dir=desc")
	assert.Equal(t, "/?dir=asc&sort=id", rec.Header().Get("Location"), "descending toggles back to ascending")

	rec = get(t, h, "/?click=username&sort=id&dir=desc")
	assert.Equal(t, "/?dir=asc&sort=username", rec.Header().Get("Location"), "a new column starts ascending")
}

func TestHeaderClick_UnknownColumn(t *testing.T) {
	rec := get(t, testServer().Handler(), "/?click=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown column")
}

func TestExportCSV(t *testing.T) {
	rec := get(t, testServer().Handler(), "/export.csv?status=Active&sort=id&dir=desc")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="users.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,dateCreated,status,username\n12,2021-01-01,Active,Carol\n1,2020-06-15,Active,Alice\n", rec.Body.String())
}

func TestExportXLSX(t *testing.T) {
	rec := get(t, testServer().Handler(), "/export.xlsx?username=bo")
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[1][3])
}

func TestHealth(t *testing.T) {
	rec := get(t, testServer().Handler(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ok", got["status"])
	assert.EqualValues(t, 3, got["rows"])
	assert.EqualValues(t, 4, got["columns"])
}

func TestMetrics(t *testing.T) {
	h := testServer().Handler()
	get(t, h, "/")
	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "siftly_table_renders_total")
}

func TestNotFound(t *testing.T) {
	rec := get(t, testServer().Handler(), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewHTTPServer(ln.Addr().String(), testServer().Handler(), time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, ln, time.Second) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
