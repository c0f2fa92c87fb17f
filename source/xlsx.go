package source

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
)

func LoadXLSXFile(path string, opts Options) (grid.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()
	ds, err := ReadXLSX(f, opts)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	logging.Infof("loaded %d rows, %d columns from %s", ds.Len(), len(ds.Columns), path)
	return ds, nil
}

// ReadXLSX reads the first sheet; its first row is the header.
func ReadXLSX(r io.Reader, opts Options) (grid.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return grid.Dataset{}, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return FromRecords(rows, opts), nil
}
