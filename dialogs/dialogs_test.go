package dialogs

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, d Dialog, msg tea.KeyMsg) tea.Msg {
	t.Helper()
	_, cmd := d.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestExport_ConfirmJoinsLastDir(t *testing.T) {
	d := NewExportDialog("users-export.csv", "/data")
	assert.True(t, d.IsVisible())
	assert.Contains(t, d.View(), "Export as:")

	msg := send(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ExportConfirmedMsg{Path: filepath.Join("/data", "users-export.csv")}, msg)
}

func TestExport_TypedPathAndPlaceholder(t *testing.T) {
	d := NewExportDialog("users-export.csv", "")
	d.prompt.input.SetValue("")
	send(t, d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a.xlsx")})
	msg := send(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ExportConfirmedMsg{Path: "a.xlsx"}, msg)

	d.prompt.input.SetValue("")
	msg = send(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ExportConfirmedMsg{Path: "users-export.csv"}, msg, "blank falls back to the placeholder")

	abs := filepath.Join(t.TempDir(), "x.csv")
	d = NewExportDialog("users-export.csv", "/elsewhere")
	d.prompt.input.SetValue(abs)
	msg = send(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ExportConfirmedMsg{Path: abs}, msg)
}

func TestExport_Cancel(t *testing.T) {
	d := NewExportDialog("users-export.csv", "")
	assert.Equal(t, ExportCanceledMsg{}, send(t, d, tea.KeyMsg{Type: tea.KeyEsc}))

	d.Hide()
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
	assert.Nil(t, send(t, d, tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestSave_ConfirmAndCancel(t *testing.T) {
	d := NewSaveDialog("view.json", "")
	assert.Contains(t, d.View(), "Save view as:")
	assert.Equal(t, SaveConfirmedMsg{Path: "view.json"}, send(t, d, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, SaveCanceledMsg{}, send(t, d, tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestHelp_ListsBindingsAndCloses(t *testing.T) {
	b := key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	d := NewHelpDialog([]key.Binding{b})
	require.True(t, d.IsVisible())
	assert.Contains(t, d.View(), "filter")

	send(t, d, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
}
