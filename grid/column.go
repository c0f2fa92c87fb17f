package grid

import (
	"strings"
	"unicode"
)

// Column pairs the machine key used to address row fields with the label
// shown to the user. The key is never derived back from the label.
type Column struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// ColumnsFromKeys builds columns in the given order with generated labels.
// Duplicate and empty keys are dropped.
func ColumnsFromKeys(keys []string) []Column {
	seen := make(map[string]struct{}, len(keys))
	cols := make([]Column, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		cols = append(cols, Column{Key: k, Label: LabelFor(k)})
	}
	return cols
}

// LabelFor turns a column key into a header label: underscores become
// spaces, camelCase words are split and the result is upper-cased.
//
//	phone_number -> PHONE NUMBER
//	dateCreated  -> DATE CREATED
func LabelFor(key string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range strings.TrimSpace(key) {
		switch {
		case r == '_' || r == '-':
			r = ' '
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteRune(' ')
		}
		if r == ' ' && prev == ' ' {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.ToUpper(b.String())
}

func indexOfColumn(cols []Column, key string) int {
	for i, c := range cols {
		if c.Key == key {
			return i
		}
	}
	return -1
}
