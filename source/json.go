package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/andareed/siftly-table/grid"
)

// ReadJSON reads an array of flat objects. Columns follow the key order of
// the first object, which a map decode would lose, so the stream is walked
// token by token.
func ReadJSON(r io.Reader, opts Options) (grid.Dataset, error) {
	forced := make(map[string]struct{}, len(opts.TextColumns))
	for _, c := range opts.TextColumns {
		forced[c] = struct{}{}
	}

	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '['); err != nil {
		return grid.Dataset{}, err
	}

	var keys []string
	var rows []grid.Row
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return grid.Dataset{}, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		row := grid.Row{}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return grid.Dataset{}, fmt.Errorf("row %d: %w", len(rows)+1, err)
			}
			key, ok := tok.(string)
			if !ok {
				return grid.Dataset{}, fmt.Errorf("row %d: expected key, got %v", len(rows)+1, tok)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return grid.Dataset{}, fmt.Errorf("row %d field %q: %w", len(rows)+1, key, err)
			}
			_, text := forced[key]
			row[key] = jsonValue(raw, text)
			if len(rows) == 0 {
				keys = append(keys, key)
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return grid.Dataset{}, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return grid.Dataset{}, err
	}
	return grid.NewDataset(keys, rows), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("error reading JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("error reading JSON: expected %q, got %v", want, tok)
	}
	return nil
}

func jsonValue(raw json.RawMessage, text bool) grid.Value {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		return grid.Str("")
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return grid.Str(string(raw))
		}
		return grid.Str(s)
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		if text {
			return grid.Str(string(raw))
		}
		return grid.Parse(string(raw))
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return grid.Str(string(raw))
		}
		return grid.Str(buf.String())
	}
}
