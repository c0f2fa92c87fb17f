package dialogs

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-table/logging"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks where to write the visible rows. The extension picks the
// format.
type Export struct {
	prompt pathPrompt
}

func NewExportDialog(defaultName, lastDir string) *Export {
	return &Export{prompt: newPathPrompt("Export as: ", defaultName, lastDir)}
}

func (d *Export) Init() tea.Cmd { return textinput.Blink }

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
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
			logging.Debugf("export dialog: confirmed %s", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debugf("export dialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	return d, d.prompt.update(msg)
}

func (d *Export) View() string {
	return d.prompt.view(".csv, .xlsx or .html • enter to export • esc to cancel")
}

func (d *Export) Show()           { d.prompt.show() }
func (d *Export) Hide()           { d.prompt.hide() }
func (d *Export) Focus() tea.Cmd  { return d.prompt.input.Focus() }
func (d *Export) Blur()           { d.prompt.input.Blur() }
func (d *Export) IsVisible() bool { return d.prompt.visible }
