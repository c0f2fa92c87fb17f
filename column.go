package main

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/andareed/siftly-table/grid"
)

type ColumnRole int

const (
	RoleNormal    ColumnRole = iota
	RolePrimary              // the column a reader scans: username, name
	RoleSecondary            // short codes: id, status
)

// ColumnMeta is the terminal layout of one dataset column.
type ColumnMeta struct {
	Key      string
	Label    string
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

type roleLayout struct {
	minWidth int
	weight   float64
}

var roleLayouts = map[ColumnRole]roleLayout{
	RoleNormal:    {minWidth: 12, weight: 1},
	RolePrimary:   {minWidth: 20, weight: 3},
	RoleSecondary: {minWidth: 8, weight: 0.5},
}

var columnRoles = map[string]ColumnRole{
	"username": RolePrimary,
	"name":     RolePrimary,
	"details":  RolePrimary,
	"id":       RoleSecondary,
	"status":   RoleSecondary,
}

func roleOf(key string) ColumnRole {
	return columnRoles[strings.ToLower(strings.TrimSpace(key))]
}

// columnMetas builds layout metadata for cols. A column is at least wide
// enough for its label plus the sort arrow and cell padding. Columns with
// no value in any row are hidden, the primary column excepted.
func columnMetas(cols []grid.Column, rows []grid.Row) []ColumnMeta {
	metas := make([]ColumnMeta, 0, len(cols))
	for _, c := range cols {
		role := roleOf(c.Key)
		rl := roleLayouts[role]
		metas = append(metas, ColumnMeta{
			Key:      c.Key,
			Label:    c.Label,
			Role:     role,
			Visible:  role == RolePrimary || len(rows) == 0 || columnHasData(c.Key, rows),
			MinWidth: max(rl.minWidth, runewidth.StringWidth(c.Label)+4),
			Weight:   rl.weight,
		})
	}
	return metas
}

func columnHasData(key string, rows []grid.Row) bool {
	for _, row := range rows {
		if strings.TrimSpace(row.Get(key).String()) != "" {
			return true
		}
	}
	return false
}

// layoutColumns sets Width on every column so the visible ones fill
// totalWidth. Each gets its MinWidth and a weighted share of the rest; the
// rounding remainder goes to the heaviest column. When the minimums alone
// do not fit, columns keep their minimums and the row is cut on render.
func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum, weightSum, heaviest := 0, 0.0, -1
	for i, c := range cols {
		if !c.Visible {
			cols[i].Width = 0
			continue
		}
		minSum += c.MinWidth
		weightSum += c.Weight
		if heaviest < 0 || c.Weight > cols[heaviest].Weight {
			heaviest = i
		}
	}
	if heaviest < 0 {
		return cols
	}

	if minSum >= totalWidth {
		for i := range cols {
			if cols[i].Visible {
				cols[i].Width = min(cols[i].MinWidth, totalWidth)
			}
		}
		return cols
	}

	spare := totalWidth - minSum
	used := 0
	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		extra := 0
		if weightSum > 0 {
			extra = int(float64(spare) * cols[i].Weight / weightSum)
		}
		cols[i].Width = cols[i].MinWidth + extra
		used += extra
	}
	cols[heaviest].Width += spare - used
	return cols
}

// visibleColumnIndex moves the header cursor from one visible column to the
// next in direction step (+1/-1), staying put at either end.
func visibleColumnIndex(cols []ColumnMeta, from, step int) int {
	for i := from + step; i >= 0 && i < len(cols); i += step {
		if cols[i].Visible {
			return i
		}
	}
	return from
}
