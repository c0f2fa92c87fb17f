package grid

import "strings"

// Direction is the per-column header state.
//
//	Neutral --click--> Ascending --click--> Descending --click--> Ascending
//
// Clicking any other column puts this one back to Neutral.
type Direction int

const (
	Neutral Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return ""
	}
}

// Next is the direction a click moves to.
func (d Direction) Next() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ParseDirection accepts "asc"/"desc" (and a few spellings of them); anything
// else is Neutral.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "up":
		return Ascending
	case "desc", "descending", "down":
		return Descending
	default:
		return Neutral
	}
}

// CSSClass tags the active header cell for the sort indicator.
func (d Direction) CSSClass() string {
	switch d {
	case Ascending:
		return "sort-asc"
	case Descending:
		return "sort-desc"
	default:
		return ""
	}
}

// Arrow is the terminal sort indicator.
func (d Direction) Arrow() string {
	switch d {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	default:
		return ""
	}
}

// SortState is the single active sort. An empty Key means no column has been
// sorted yet and rows keep dataset order.
type SortState struct {
	Key       string
	Ascending bool
}

func (s SortState) Active() bool { return s.Key != "" }

// Direction reports the header state of key under s.
func (s SortState) Direction(key string) Direction {
	if s.Key == "" || s.Key != key {
		return Neutral
	}
	if s.Ascending {
		return Ascending
	}
	return Descending
}

// HeaderCell is what a surface needs to draw one header.
type HeaderCell struct {
	Column
	Dir Direction
}
