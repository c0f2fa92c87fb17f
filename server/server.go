// Package server serves the table over HTTP. Every request carries the full
// table state in its query string, so each one builds its own grid.Table
// over the shared read-only dataset.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"

	"github.com/andareed/siftly-table/export"
	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/htmlview"
	"github.com/andareed/siftly-table/logging"
)

var (
	pageRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "siftly_table_renders_total",
		Help: "The total number of rendered table pages",
	})
	headerClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "siftly_table_header_clicks_total",
		Help: "Header clicks by column",
	}, []string{"column"})
	exportsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "siftly_table_exports_total",
		Help: "Downloads of the current view by format",
	}, []string{"format"})
	badRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "siftly_table_bad_requests_total",
		Help: "Requests rejected for an invalid query",
	})
	renderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "siftly_table_render_seconds",
		Help:    "Time spent sorting, filtering and rendering one page",
		Buckets: prometheus.DefBuckets,
	})
)

// TableRequest is the state part of the query string. Filter values are
// read separately since their keys come from configuration.
type TableRequest struct {
	Sort  string `schema:"sort"`
	Dir   string `schema:"dir"`
	Click string `schema:"click"`
}

type Options struct {
	Title  string
	Fields []grid.FilterField
	Locale language.Tag
}

type WebServer struct {
	data    grid.Dataset
	fields  []grid.FilterField
	locale  language.Tag
	title   string
	decoder *schema.Decoder
}

func New(data grid.Dataset, opts Options) *WebServer {
	fields := opts.Fields
	if fields == nil {
		fields = grid.DefaultFields()
	}
	locale := opts.Locale
	if locale == language.Und {
		locale = language.English
	}
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &WebServer{
		data:    data,
		fields:  fields,
		locale:  locale,
		title:   opts.Title,
		decoder: decoder,
	}
}

// Handler routes the page, downloads, health and metrics endpoints.
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", ws.handleTable)
	mux.HandleFunc("GET /export.csv", ws.handleExport(export.CSV))
	mux.HandleFunc("GET /export.xlsx", ws.handleExport(export.XLSX))
	mux.HandleFunc("GET /healthz", ws.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (ws *WebServer) handleTable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	tbl, req, err := ws.tableFor(r.URL.Query())
	if err != nil {
		ws.badRequest(w, err)
		return
	}

	if req.Click != "" {
		if err := tbl.Handle(grid.HeaderClick{Key: req.Click}); err != nil {
			ws.badRequest(w, err)
			return
		}
		headerClicks.WithLabelValues(req.Click).Inc()
		v := tbl.View()
		logging.Debugf("header click %q -> sort %q asc=%t", req.Click, v.Sort.Key, v.Sort.Ascending)
		http.Redirect(w, r, htmlview.URL(r.URL.Path, htmlview.Query(v.Sort, v.Criteria)), http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	opts := htmlview.Options{Title: ws.title, Action: r.URL.Path, Interactive: true}
	if err := tbl.Render(htmlview.Surface(&buf, opts)); err != nil {
		logging.Errorf("render table: %v", err)
		http.Error(w, "failed to render table", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logging.Warnf("write response: %v", err)
	}
	pageRenders.Inc()
	renderSeconds.Observe(time.Since(start).Seconds())
}

func (ws *WebServer) handleExport(format export.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl, _, err := ws.tableFor(r.URL.Query())
		if err != nil {
			ws.badRequest(w, err)
			return
		}
		var buf bytes.Buffer
		if err := export.Write(&buf, format, tbl.View()); err != nil {
			logging.Errorf("export %s: %v", format, err)
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="users.%s"`, format))
		if _, err := buf.WriteTo(w); err != nil {
			logging.Warnf("write export: %v", err)
		}
		exportsServed.WithLabelValues(format.String()).Inc()
	}
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"rows":    ws.data.Len(),
		"columns": len(ws.data.Columns),
	})
	if err != nil {
		logging.Warnf("write health: %v", err)
	}
}

func (ws *WebServer) badRequest(w http.ResponseWriter, err error) {
	badRequests.Inc()
	logging.Debugf("bad request: %v", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// tableFor rebuilds the table state a query string describes. A sort key
// without a direction sorts ascending; an unknown sort key is dropped.
func (ws *WebServer) tableFor(query url.Values) (*grid.Table, TableRequest, error) {
	var req TableRequest
	if err := ws.decoder.Decode(&req, query); err != nil {
		return nil, req, fmt.Errorf("decode query: %w", err)
	}
	opts := []grid.Option{
		grid.WithFields(ws.fields),
		grid.WithLocale(ws.locale),
		grid.WithCriteria(ws.criteria(query)),
	}
	if req.Sort != "" {
		opts = append(opts, grid.WithSort(grid.SortState{
			Key:       req.Sort,
			Ascending: grid.ParseDirection(req.Dir) != grid.Descending,
		}))
	}
	return grid.New(ws.data, opts...), req, nil
}

// criteria picks the configured filter keys out of query. The dropdown's
// All entry is the same as no value.
func (ws *WebServer) criteria(query url.Values) grid.Criteria {
	c := grid.Criteria{}
	for _, f := range ws.fields {
		v := query.Get(f.Key)
		if v == "" || (f.Kind == grid.KindEnum && v == grid.AllOption) {
			continue
		}
		c[f.Key] = v
	}
	return c
}
