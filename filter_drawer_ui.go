package main

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/andareed/siftly-table/grid"
)

// drawerInput is the text box for one free-text filter field. Dropdown
// fields are driven by the status key instead.
type drawerInput struct {
	field grid.FilterField
	input textinput.Model
}

type filterDrawerUI struct {
	open     bool
	focus    int
	inputs   []drawerInput
	errorMsg string
}

func newFilterDrawerUI(fields []grid.FilterField) filterDrawerUI {
	var d filterDrawerUI
	for _, f := range fields {
		if f.Kind == grid.KindEnum {
			continue
		}
		d.inputs = append(d.inputs, drawerInput{field: f, input: initFilterInput(f)})
	}
	return d
}

func initFilterInput(f grid.FilterField) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = f.Placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 24
	if f.Kind == grid.KindDateFrom || f.Kind == grid.KindDateTo {
		ti.CharLimit = len(grid.DateLayout)
		ti.Width = len(grid.DateLayout) + 1
	}
	return ti
}

// loadFrom copies the applied criteria into the inputs.
func (d *filterDrawerUI) loadFrom(c grid.Criteria) {
	for i := range d.inputs {
		d.inputs[i].input.SetValue(c[d.inputs[i].field.Key])
	}
}

func (d *filterDrawerUI) setFocus(focus int) {
	if len(d.inputs) == 0 {
		d.focus = 0
		return
	}
	d.focus = (focus%len(d.inputs) + len(d.inputs)) % len(d.inputs)
	for i := range d.inputs {
		if i == d.focus {
			d.inputs[i].input.Focus()
		} else {
			d.inputs[i].input.Blur()
		}
	}
}

// draftDate returns the parsed value of the first input of kind, if any.
func (d *filterDrawerUI) draftDate(kind grid.FilterKind) (string, bool) {
	for _, in := range d.inputs {
		if in.field.Kind == kind {
			v := in.input.Value()
			_, ok := parseDate(v)
			return v, ok
		}
	}
	return "", false
}
