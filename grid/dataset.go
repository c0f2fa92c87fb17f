package grid

// Dataset is the canonical, load-once collection. Nothing in this package
// writes to Rows after construction; display order lives in Table.
type Dataset struct {
	Columns []Column
	Rows    []Row
}

// NewDataset fixes the column set from keys, which should be the key set of
// the first row in source order. With no rows there is nothing to derive
// columns from, so the dataset is empty.
func NewDataset(keys []string, rows []Row) Dataset {
	if len(rows) == 0 {
		return Dataset{}
	}
	return Dataset{
		Columns: ColumnsFromKeys(keys),
		Rows:    rows,
	}
}

func (d Dataset) Len() int { return len(d.Rows) }

func (d Dataset) Empty() bool { return len(d.Columns) == 0 || len(d.Rows) == 0 }

func (d Dataset) HasColumn(key string) bool {
	return indexOfColumn(d.Columns, key) >= 0
}

// cloneRows returns a new slice header over the same rows so that sorting
// it leaves the dataset order untouched.
func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}
