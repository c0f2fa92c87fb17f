// Package htmlview paints a grid.View as an HTML page: a filter form, a
// header row whose cells link to the next sort state and the matching rows.
package htmlview

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/andareed/siftly-table/grid"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("htmlview").ParseFS(templateFS, "templates/*.html"))

// Query parameters that carry table state next to the filter keys.
const (
	ParamSort  = "sort"
	ParamDir   = "dir"
	ParamClick = "click"
)

// Reserved reports whether key collides with a state parameter and so
// cannot name a filter field.
func Reserved(key string) bool {
	return key == ParamSort || key == ParamDir || key == ParamClick
}

type Options struct {
	Title string
	// Action is the path the filter form and header links point at. Empty
	// means the current page.
	Action string
	// Interactive adds the filter form and makes header cells links.
	// Static exports leave it off.
	Interactive bool
}

type headerData struct {
	Key   string
	Label string
	Class string
	Href  string
}

type optionData struct {
	Value    string
	Selected bool
}

type fieldData struct {
	Key         string
	Label       string
	InputType   string
	Value       string
	Placeholder string
	Options     []optionData
}

type pageData struct {
	Title       string
	Action      string
	Interactive bool
	Sort        string
	Dir         string
	ClearHref   string
	Headers     []headerData
	Fields      []fieldData
	Rows        [][]string
	Shown       int
	Total       int
}

// Write renders one full page for v.
func Write(w io.Writer, v grid.View, opts Options) error {
	if err := pageTemplate.ExecuteTemplate(w, "page", newPageData(v, opts)); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Surface paints every repaint as a complete page on w.
func Surface(w io.Writer, opts Options) grid.Surface {
	return grid.SurfaceFunc(func(v grid.View) error {
		return Write(w, v, opts)
	})
}

// Query encodes sort and filter state. url.Values.Encode sorts keys, so the
// same state always yields the same URL.
func Query(s grid.SortState, c grid.Criteria) url.Values {
	q := url.Values{}
	if s.Active() {
		q.Set(ParamSort, s.Key)
		q.Set(ParamDir, s.Direction(s.Key).String())
	}
	for k, v := range c {
		if v != "" && !Reserved(k) {
			q.Set(k, v)
		}
	}
	return q
}

// URL joins action and the encoded query.
func URL(action string, q url.Values) string {
	enc := q.Encode()
	if enc == "" {
		if action == "" {
			return "?"
		}
		return action
	}
	return action + "?" + enc
}

// ClickURL is the link for a header cell: current state plus the click.
func ClickURL(action string, v grid.View, key string) string {
	q := Query(v.Sort, v.Criteria)
	q.Set(ParamClick, key)
	return URL(action, q)
}

func newPageData(v grid.View, opts Options) pageData {
	title := opts.Title
	if title == "" {
		title = "Users"
	}
	d := pageData{
		Title:       title,
		Action:      opts.Action,
		Interactive: opts.Interactive,
		Shown:       len(v.Rows),
		Total:       v.Total,
		ClearHref:   URL(opts.Action, Query(v.Sort, nil)),
	}
	if v.Sort.Active() {
		d.Sort = v.Sort.Key
		d.Dir = v.Sort.Direction(v.Sort.Key).String()
	}

	d.Headers = make([]headerData, len(v.Headers))
	for i, h := range v.Headers {
		d.Headers[i] = headerData{Key: h.Key, Label: h.Label, Class: h.Dir.CSSClass()}
		if opts.Interactive {
			d.Headers[i].Href = ClickURL(opts.Action, v, h.Key)
		}
	}

	d.Fields = make([]fieldData, 0, len(v.Fields))
	for _, f := range v.Fields {
		fd := fieldData{
			Key:         f.Key,
			Label:       f.Label,
			InputType:   inputType(f.Kind),
			Value:       v.Criteria[f.Key],
			Placeholder: f.Placeholder,
		}
		if f.Kind == grid.KindEnum {
			selected := v.Criteria[f.Key]
			if selected == "" {
				selected = grid.AllOption
			}
			for _, c := range f.Choices() {
				fd.Options = append(fd.Options, optionData{Value: c, Selected: c == selected})
			}
		}
		d.Fields = append(d.Fields, fd)
	}

	d.Rows = make([][]string, len(v.Rows))
	for i, r := range v.Rows {
		d.Rows[i] = r.Strings(v.Columns)
	}
	return d
}

func inputType(k grid.FilterKind) string {
	switch k {
	case grid.KindNumber:
		return "number"
	case grid.KindDateFrom, grid.KindDateTo:
		return "date"
	default:
		return "text"
	}
}
