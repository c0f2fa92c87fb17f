// Package grid holds the pure data layer of the table: rows, columns, the
// filter engine and the sort/render coordinator. Nothing in here knows about
// terminals or HTTP; adapters translate their own events into grid.Event.
package grid

import (
	"math"
	"strconv"
	"strings"
)

// Value is a single cell. It keeps the raw text it was loaded from so that
// display and substring matching never see a reformatted number.
type Value struct {
	raw   string
	num   float64
	isNum bool
}

func Str(s string) Value {
	return Value{raw: s}
}

func Num(f float64) Value {
	return Value{raw: strconv.FormatFloat(f, 'f', -1, 64), num: f, isNum: true}
}

func Int(i int) Value {
	return Value{raw: strconv.Itoa(i), num: float64(i), isNum: true}
}

// Parse returns a numeric Value when s is a finite number, a string Value
// otherwise. "NaN" and "Inf" spellings stay text.
func Parse(s string) Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return Str(s)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Str(s)
	}
	return Value{raw: s, num: f, isNum: true}
}

func (v Value) String() string { return v.raw }

func (v Value) IsNumber() bool { return v.isNum }

func (v Value) Float() (float64, bool) { return v.num, v.isNum }

// Row maps a column key to its cell. A key that is not present reads as the
// zero Value, whose string form is "".
type Row map[string]Value

func (r Row) Get(key string) Value {
	return r[key]
}

// Strings returns the string form of each column in order.
func (r Row) Strings(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = r[c.Key].String()
	}
	return out
}

// Join is used for search and clipboard output.
func (r Row) Join(cols []Column, sep string) string {
	return strings.Join(r.Strings(cols), sep)
}
