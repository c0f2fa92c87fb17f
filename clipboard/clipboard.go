// Package clipboard copies text to the system clipboard, falling back to an
// OSC 52 escape sequence when no native clipboard is reachable (ssh, tmux,
// headless Wayland).
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-table/logging"
)

var writeNative = clipboard.WriteAll

// Copy places text on the clipboard.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := writeNative(text)
		if err == nil {
			logging.Debugf("clipboard: copied %d bytes natively", len(text))
			return nil
		}
		logging.Warnf("clipboard: native copy failed: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
