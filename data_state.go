package main

import (
	"github.com/andareed/siftly-table/grid"
)

type dataState struct {
	table   *grid.Table
	view    grid.View // last view painted by Render
	columns []ColumnMeta
	dates   dateSpan // bounds of the column the date filters look at
}
