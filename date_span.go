package main

import (
	"strings"
	"time"

	"github.com/andareed/siftly-table/grid"
)

// dateSpan is the earliest and latest parseable date in one column.
type dateSpan struct {
	ok       bool
	column   string
	min, max time.Time
}

// dateColumn is the column the first date bound field looks at, or "".
func dateColumn(fields []grid.FilterField) string {
	for _, f := range fields {
		if f.Kind == grid.KindDateFrom || f.Kind == grid.KindDateTo {
			return f.Column
		}
	}
	return ""
}

func computeDateSpan(rows []grid.Row, column string) dateSpan {
	span := dateSpan{column: column}
	if column == "" {
		return span
	}
	for _, row := range rows {
		ts, ok := parseDate(row.Get(column).String())
		if !ok {
			continue
		}
		if !span.ok {
			span.min, span.max, span.ok = ts, ts, true
			continue
		}
		if ts.Before(span.min) {
			span.min = ts
		}
		if ts.After(span.max) {
			span.max = ts
		}
	}
	return span
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(grid.DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func clampTimeToBounds(t time.Time, min time.Time, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}
