package dialogs

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/logging"
)

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

// Save asks where to write the current sort and filters.
type Save struct {
	prompt pathPrompt
}

func NewSaveDialog(defaultName, lastDir string) *Save {
	return &Save{prompt: newPathPrompt("Save view as: ", defaultName, lastDir)}
}

func (d *Save) Init() tea.Cmd { return textinput.Blink }

func (d *Save) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.prompt.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.prompt.path()
			if path == "" {
				return d, nil
			}
			logging.Debugf("save dialog: confirmed %s", path)
			return d, func() tea.Msg { return SaveConfirmedMsg{Path: path} }
		case "esc":
			return d, func() tea.Msg { return SaveCanceledMsg{} }
		}
	}
	return d, d.prompt.update(msg)
}

func (d *Save) View() string {
	return d.prompt.view("enter to save • esc to cancel")
}

func (d *Save) Show()           { d.prompt.show() }
func (d *Save) Hide()           { d.prompt.hide() }
func (d *Save) Focus() tea.Cmd  { return d.prompt.input.Focus() }
func (d *Save) Blur()           { d.prompt.input.Blur() }
func (d *Save) IsVisible() bool { return d.prompt.visible }
