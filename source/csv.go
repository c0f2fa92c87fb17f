package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/andareed/siftly-table/grid"
)

// ReadCSV expects a header record. Ragged records are padded with empty
// cells rather than rejected.
func ReadCSV(r io.Reader, opts Options) (grid.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return grid.Dataset{}, fmt.Errorf("error reading CSV: %w", err)
	}
	return FromRecords(records, opts), nil
}
