// Package source turns files (or the built-in generator) into a grid.Dataset.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
)

// Options tunes how raw text is typed.
type Options struct {
	// TextColumns are kept as strings even when every value looks numeric
	// (phone numbers with leading zeros, postcodes).
	TextColumns []string
}

// LoadAuto picks a loader from the file extension.
func LoadAuto(path string, opts Options) (grid.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSVFile(path, opts)
	case ".xlsx":
		return LoadXLSXFile(path, opts)
	case ".json":
		return LoadJSONFile(path, opts)
	default:
		return grid.Dataset{}, fmt.Errorf("unsupported file extension %q (want .csv, .xlsx or .json)", ext)
	}
}

func LoadCSVFile(path string, opts Options) (grid.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()
	ds, err := ReadCSV(f, opts)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	logging.Infof("loaded %d rows, %d columns from %s", ds.Len(), len(ds.Columns), path)
	return ds, nil
}

func LoadJSONFile(path string, opts Options) (grid.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()
	ds, err := ReadJSON(f, opts)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	logging.Infof("loaded %d rows, %d columns from %s", ds.Len(), len(ds.Columns), path)
	return ds, nil
}

// FromRecords builds a dataset from a header record followed by data
// records, the shape both CSV and spreadsheet readers produce.
func FromRecords(records [][]string, opts Options) grid.Dataset {
	if len(records) == 0 {
		return grid.Dataset{}
	}
	header := normalizeHeader(records[0])
	body := records[1:]
	numeric := detectNumericColumns(header, body, opts.TextColumns)

	rows := make([]grid.Row, 0, len(body))
	for _, rec := range body {
		if blank(rec) {
			continue
		}
		row := make(grid.Row, len(header))
		for i, key := range header {
			var raw string
			if i < len(rec) {
				raw = rec[i]
			}
			if numeric[i] {
				row[key] = grid.Parse(raw)
			} else {
				row[key] = grid.Str(raw)
			}
		}
		rows = append(rows, row)
	}
	return grid.NewDataset(header, rows)
}

// normalizeHeader trims header cells and names blank ones by position.
// Repeated names get a _2, _3... suffix so no column overwrites another.
func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		key := h
		for n := 2; seen[key]; n++ {
			key = fmt.Sprintf("%s_%d", h, n)
		}
		seen[key] = true
		header[i] = key
	}
	return header
}

// detectNumericColumns marks a column numeric when it has at least one
// value and every non-empty value parses as a number.
func detectNumericColumns(header []string, body [][]string, textColumns []string) []bool {
	forced := make(map[string]struct{}, len(textColumns))
	for _, c := range textColumns {
		forced[c] = struct{}{}
	}
	numeric := make([]bool, len(header))
	for col, key := range header {
		if _, ok := forced[key]; ok {
			continue
		}
		seen := false
		isNum := true
		for _, rec := range body {
			if col >= len(rec) || strings.TrimSpace(rec[col]) == "" {
				continue
			}
			seen = true
			if !grid.Parse(rec[col]).IsNumber() {
				isNum = false
				break
			}
		}
		numeric[col] = seen && isNum
	}
	return numeric
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
