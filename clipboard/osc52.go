package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/andareed/siftly-table/logging"
)

var (
	osc52Out io.Writer = os.Stderr
	osc52Env           = os.Getenv
	osc52TTY           = func() bool { return isTTY(os.Stderr) }
)

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("clipboard: OSC52 unavailable (stderr not a TTY or TERM=dumb)")
		return errors.New("clipboard unavailable (OSC52 unsupported by terminal)")
	}

	seq := osc52.New(text)
	switch {
	case osc52Env("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(osc52Env("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(osc52Out); err != nil {
		logging.Warnf("clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := osc52Env("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return osc52TTY()
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
