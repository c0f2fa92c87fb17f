package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/export"
	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
)

const (
	defaultExportName    = "users-export.csv"
	defaultViewStateName = "view.json"
)

// --- Wire format ---

const viewStateVersion = 1

type sortDTO struct {
	Key string `json:"key,omitempty"`
	Dir string `json:"dir,omitempty"`
}

// viewStateDTO is a saved sort and filter selection. It holds no rows, so
// it can be replayed over a fresh load of the same source.
type viewStateDTO struct {
	Version int               `json:"version"`
	Sort    sortDTO           `json:"sort"`
	Filters map[string]string `json:"filters,omitempty"`
}

// ViewState is the restorable part of a table: where it is sorted and what
// it is filtered by.
type ViewState struct {
	Sort     grid.SortState
	Criteria grid.Criteria
}

// Options turns the state into table options.
func (s ViewState) Options() []grid.Option {
	return []grid.Option{grid.WithSort(s.Sort), grid.WithCriteria(s.Criteria)}
}

func viewStateOf(v grid.View) ViewState {
	return ViewState{Sort: v.Sort, Criteria: v.Criteria.Clone()}
}

func toViewStateDTO(s ViewState) viewStateDTO {
	dto := viewStateDTO{Version: viewStateVersion}
	if s.Sort.Active() {
		dir := grid.Descending
		if s.Sort.Ascending {
			dir = grid.Ascending
		}
		dto.Sort = sortDTO{Key: s.Sort.Key, Dir: dir.String()}
	}
	if len(s.Criteria) > 0 {
		dto.Filters = make(map[string]string, len(s.Criteria))
		for k, v := range s.Criteria {
			if v != "" {
				dto.Filters[k] = v
			}
		}
	}
	return dto
}

func fromViewStateDTO(dto viewStateDTO) (ViewState, error) {
	if dto.Version != viewStateVersion {
		return ViewState{}, fmt.Errorf("view state version %d not supported (want %d)", dto.Version, viewStateVersion)
	}
	s := ViewState{Criteria: grid.Criteria{}}
	if dto.Sort.Key != "" {
		s.Sort = grid.SortState{Key: dto.Sort.Key, Ascending: grid.ParseDirection(dto.Sort.Dir) != grid.Descending}
	}
	for k, v := range dto.Filters {
		if v != "" {
			s.Criteria[k] = v
		}
	}
	return s, nil
}

// --- Public API ---

// SaveViewState writes the sort and filters of v to path as JSON.
func SaveViewState(path string, v grid.View) error {
	data, err := json.MarshalIndent(toViewStateDTO(viewStateOf(v)), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadViewState reads a file written by SaveViewState. Unknown sort keys and
// filter fields are left for the table to ignore or reject.
func LoadViewState(path string) (ViewState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ViewState{}, err
	}
	var dto viewStateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return ViewState{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return fromViewStateDTO(dto)
}

// --- Model hooks ---

func (m *model) exportTo(path string) tea.Cmd {
	if err := export.ToFile(path, m.data.view); err != nil {
		logging.Errorf("export %s: %v", path, err)
		return m.startNotice("Export failed: "+err.Error(), "error", noticeDuration)
	}
	m.lastDir = filepath.Dir(path)
	return m.startNotice(fmt.Sprintf("Exported %d rows to %s", len(m.data.view.Rows), path), "success", noticeDuration)
}

func (m *model) saveViewTo(path string) tea.Cmd {
	if err := SaveViewState(path, m.data.view); err != nil {
		logging.Errorf("save view %s: %v", path, err)
		return m.startNotice("Save failed: "+err.Error(), "error", noticeDuration)
	}
	logging.Infof("view saved to %s: %s, %s", path, sortSummary(m.data.view.Sort), filterSummary(m.data.view))
	m.lastDir = filepath.Dir(path)
	return m.startNotice("Saved view to "+path, "success", noticeDuration)
}
