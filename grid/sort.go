package grid

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders rows by one column. Numbers compare numerically, anything
// else goes through a collator for the configured locale.
//
// A Sorter is not safe for concurrent use; the collator keeps scratch
// buffers. Give each Table its own.
type Sorter struct {
	tag      language.Tag
	collator *collate.Collator
}

func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{tag: tag, collator: collate.New(tag)}
}

// ParseLocale falls back to English for an empty or malformed tag.
func ParseLocale(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

func (s *Sorter) Locale() language.Tag { return s.tag }

// Compare is total for numeric/numeric and string/string pairs. A mixed
// pair falls back to comparing string forms.
func (s *Sorter) Compare(a, b Value) int {
	if af, ok := a.Float(); ok {
		if bf, ok := b.Float(); ok {
			return cmp.Compare(af, bf)
		}
	}
	return s.collator.CompareString(a.String(), b.String())
}

// Sort returns a sorted copy of rows. The sort is stable so equal keys keep
// their relative order, which makes repeated sorts idempotent.
func (s *Sorter) Sort(rows []Row, key string, ascending bool) []Row {
	out := cloneRows(rows)
	if key == "" {
		return out
	}
	slices.SortStableFunc(out, func(x, y Row) int {
		c := s.Compare(x.Get(key), y.Get(key))
		if !ascending {
			return -c
		}
		return c
	})
	return out
}
