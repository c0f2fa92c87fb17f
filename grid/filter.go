package grid

import (
	"fmt"
	"strings"
)

type FilterKind int

const (
	KindText FilterKind = iota
	KindNumber
	KindEnum
	KindDateFrom
	KindDateTo
)

func (k FilterKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindEnum:
		return "enum"
	case KindDateFrom:
		return "date-from"
	case KindDateTo:
		return "date-to"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseFilterKind accepts the names produced by FilterKind.String.
func ParseFilterKind(s string) (FilterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return KindText, nil
	case "number":
		return KindNumber, nil
	case "enum":
		return KindEnum, nil
	case "date-from", "datefrom":
		return KindDateFrom, nil
	case "date-to", "dateto":
		return KindDateTo, nil
	}
	return KindText, fmt.Errorf("unknown filter kind %q", s)
}

// AllOption is the dropdown entry that removes an enum constraint.
const AllOption = "All"

// DateLayout is the only date representation the range bounds understand.
// It sorts lexicographically in chronological order.
const DateLayout = "2006-01-02"

// FilterField describes one input of the filter bar: which row column it
// inspects and how.
type FilterField struct {
	Key         string
	Column      string
	Kind        FilterKind
	Label       string
	Options     []string // enum values, without AllOption
	Placeholder string
}

// DefaultFields mirrors the widest filter bar: status dropdown, id, username,
// phone number and a date range over dateCreated.
func DefaultFields() []FilterField {
	return []FilterField{
		{Key: "status", Column: "status", Kind: KindEnum, Label: "Status", Options: []string{"Active", "Inactive"}},
		{Key: "id", Column: "id", Kind: KindNumber, Label: "ID", Placeholder: "id"},
		{Key: "username", Column: "username", Kind: KindText, Label: "Username", Placeholder: "username"},
		{Key: "phoneNumber", Column: "phoneNumber", Kind: KindText, Label: "Phone", Placeholder: "phone number"},
		{Key: "dateFrom", Column: "dateCreated", Kind: KindDateFrom, Label: "From", Placeholder: DateLayout},
		{Key: "dateTo", Column: "dateCreated", Kind: KindDateTo, Label: "To", Placeholder: DateLayout},
	}
}

// Criteria maps a filter field key to its current value. An empty value
// imposes no constraint.
type Criteria map[string]string

func (c Criteria) Clone() Criteria {
	out := make(Criteria, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Active reports whether any criterion constrains rows.
func (c Criteria) Active() bool {
	for _, v := range c {
		if v != "" {
			return true
		}
	}
	return false
}

// Engine evaluates Criteria against rows. The zero Engine has no fields and
// keeps every row.
type Engine struct {
	fields []FilterField
	byKey  map[string]int
}

func NewEngine(fields []FilterField) *Engine {
	e := &Engine{
		fields: append([]FilterField(nil), fields...),
		byKey:  make(map[string]int, len(fields)),
	}
	for i, f := range e.fields {
		e.byKey[f.Key] = i
	}
	return e
}

func (e *Engine) Fields() []FilterField {
	return append([]FilterField(nil), e.fields...)
}

func (e *Engine) Field(key string) (FilterField, bool) {
	i, ok := e.byKey[key]
	if !ok {
		return FilterField{}, false
	}
	return e.fields[i], true
}

// Apply returns the rows that satisfy every non-empty criterion, in input
// order. The input slice is not modified. Keys without a matching field are
// ignored.
func (e *Engine) Apply(rows []Row, c Criteria) []Row {
	active := e.activeFields(c)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matchesAll(row, active, c) {
			out = append(out, row)
		}
	}
	return out
}

// Match reports whether a single row passes c.
func (e *Engine) Match(row Row, c Criteria) bool {
	return matchesAll(row, e.activeFields(c), c)
}

func (e *Engine) activeFields(c Criteria) []FilterField {
	var active []FilterField
	for _, f := range e.fields {
		if c[f.Key] != "" {
			active = append(active, f)
		}
	}
	return active
}

func matchesAll(row Row, fields []FilterField, c Criteria) bool {
	for _, f := range fields {
		if !f.match(row, c[f.Key]) {
			return false
		}
	}
	return true
}

func (f FilterField) match(row Row, want string) bool {
	if want == "" {
		return true
	}
	got := row.Get(f.Column).String()
	switch f.Kind {
	case KindEnum:
		if !f.recognizes(want) {
			return true
		}
		return got == want
	case KindText, KindNumber:
		return strings.Contains(strings.ToUpper(got), strings.ToUpper(want))
	case KindDateFrom:
		return got > want
	case KindDateTo:
		return got < want
	}
	return true
}

func (f FilterField) recognizes(v string) bool {
	for _, o := range f.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Choices is the dropdown list for an enum field, AllOption first.
func (f FilterField) Choices() []string {
	return append([]string{AllOption}, f.Options...)
}
