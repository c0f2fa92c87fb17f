package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		isNum bool
		num   float64
	}{
		{"12", true, 12},
		{" 3.5 ", true, 3.5},
		{"012345678", true, 12345678},
		{"Alice", false, 0},
		{"", false, 0},
		{"2020-06-15", false, 0},
		{"NaN", false, 0},
		{"inf", false, 0},
		{"-Infinity", false, 0},
		{"1e400", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := Parse(tt.in)
			assert.Equal(t, tt.in, v.String(), "raw form is preserved")
			f, ok := v.Float()
			assert.Equal(t, tt.isNum, ok)
			assert.Equal(t, tt.num, f)
		})
	}
}

func TestZeroValue(t *testing.T) {
	var r Row
	v := r.Get("missing")
	assert.Equal(t, "", v.String())
	assert.False(t, v.IsNumber())
}

func TestRowJoin(t *testing.T) {
	cols := ColumnsFromKeys([]string{"id", "username", "missing"})
	r := Row{"id": Int(7), "username": Str("Elton")}
	assert.Equal(t, "7\tElton\t", r.Join(cols, "\t"))
}

func TestLabelFor(t *testing.T) {
	tests := map[string]string{
		"id":           "ID",
		"phone_number": "PHONE NUMBER",
		"dateCreated":  "DATE CREATED",
		"user__name":   "USER NAME",
		"ipv6Address":  "IPV6 ADDRESS",
		"Status":       "STATUS",
	}
	for in, want := range tests {
		assert.Equal(t, want, LabelFor(in), in)
	}
}

func TestColumnsFromKeys_DropsDuplicates(t *testing.T) {
	cols := ColumnsFromKeys([]string{"a", "", "b", "a"})
	assert.Equal(t, []Column{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}}, cols)
}

func TestSorterCompare(t *testing.T) {
	s := NewSorter(language.English)

	assert.Negative(t, s.Compare(Int(2), Int(10)))
	assert.Positive(t, s.Compare(Num(2.5), Int(2)))
	assert.Zero(t, s.Compare(Int(3), Parse("3")))

	assert.Negative(t, s.Compare(Str("apple"), Str("Banana")), "collation ignores case at primary strength")
	assert.Negative(t, s.Compare(Str("Émile"), Str("Fred")), "accented letters sort with their base letter")
	assert.Negative(t, s.Compare(Str(""), Str("a")))
}

func TestSorterSort_StableAndCopy(t *testing.T) {
	s := NewSorter(language.English)
	rows := []Row{
		{"k": Str("b"), "n": Int(1)},
		{"k": Str("a"), "n": Int(2)},
		{"k": Str("b"), "n": Int(3)},
	}
	out := s.Sort(rows, "k", true)
	assert.Equal(t, []string{"2", "1", "3"}, []string{out[0]["n"].String(), out[1]["n"].String(), out[2]["n"].String()})
	assert.Equal(t, "1", rows[0]["n"].String(), "input untouched")

	same := s.Sort(rows, "", true)
	assert.Equal(t, rows, same)
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.English, ParseLocale(""))
	assert.Equal(t, language.English, ParseLocale("!!"))
	assert.Equal(t, "sv", ParseLocale("sv").String())
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Neutral, ParseDirection(""))
	assert.Equal(t, Descending, Ascending.Next())
	assert.Equal(t, Ascending, Neutral.Next())
	assert.Equal(t, Ascending, Descending.Next())
}
