// Package export writes the rows currently on display (sort order and
// filters applied) to a file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/htmlview"
	"github.com/andareed/siftly-table/logging"
)

type Format int

const (
	CSV Format = iota
	XLSX
	HTML
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case XLSX:
		return "xlsx"
	case HTML:
		return "html"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ContentType is what an HTTP download of f is served as.
func (f Format) ContentType() string {
	switch f {
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case HTML:
		return "text/html; charset=utf-8"
	default:
		return "text/csv; charset=utf-8"
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	case ".html", ".htm":
		return HTML, nil
	default:
		return CSV, fmt.Errorf("unsupported export extension %q (want .csv, .xlsx or .html)", ext)
	}
}

// ToFile writes v to path in the format its extension names.
func ToFile(path string, v grid.View) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	if err := Write(f, format, v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	logging.Infof("exported %d of %d rows to %s", len(v.Rows), v.Total, path)
	return nil
}

func Write(w io.Writer, format Format, v grid.View) error {
	switch format {
	case CSV:
		return WriteCSV(w, v)
	case XLSX:
		return WriteXLSX(w, v)
	case HTML:
		return htmlview.Write(w, v, htmlview.Options{})
	default:
		return fmt.Errorf("unsupported export format %v", format)
	}
}

// WriteCSV writes the column keys as the header row, then one record per
// displayed row. Keys rather than labels keep the file loadable again.
func WriteCSV(w io.Writer, v grid.View) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		header[i] = c.Key
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range v.Rows {
		if err := cw.Write(r.Strings(v.Columns)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

const sheetName = "Users"

// WriteXLSX writes one sheet with a bold, frozen key header. Numeric cells
// are stored as numbers.
func WriteXLSX(w io.Writer, v grid.View) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(v.Columns))
	for i, c := range v.Columns {
		header[i] = c.Key
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if len(v.Columns) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(v.Columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
			return fmt.Errorf("header style: %w", err)
		}
		if err := f.SetPanes(sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("freeze header: %w", err)
		}
	}

	for i, r := range v.Rows {
		cells := make([]any, len(v.Columns))
		for j, c := range v.Columns {
			val := r.Get(c.Key)
			if n, ok := val.Float(); ok {
				cells[j] = n
			} else {
				cells[j] = val.String()
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
