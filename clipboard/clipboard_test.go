package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOSC52(t *testing.T, env map[string]string, tty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldEnv, oldTTY, oldNative := osc52Out, osc52Env, osc52TTY, writeNative
	t.Cleanup(func() {
		osc52Out, osc52Env, osc52TTY, writeNative = oldOut, oldEnv, oldTTY, oldNative
	})
	osc52Out = &buf
	osc52Env = func(k string) string { return env[k] }
	osc52TTY = func() bool { return tty }
	writeNative = func(string) error { return errors.New("no clipboard") }
	return &buf
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	buf := stubOSC52(t, map[string]string{"TERM": "xterm-256color"}, true)

	require.NoError(t, Copy("1\tAlice"))
	assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("1\tAlice")))
	assert.Contains(t, buf.String(), "\x1b]52;c;")
}

func TestCopyWrapsForTmux(t *testing.T) {
	buf := stubOSC52(t, map[string]string{"TERM": "xterm", "TMUX": "/tmp/tmux-0/default,1,0"}, true)

	require.NoError(t, Copy("x"))
	assert.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestCopyFailsWithoutTerminal(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		tty  bool
	}{
		{"dumb terminal", map[string]string{"TERM": "dumb"}, true},
		{"no TERM", map[string]string{}, true},
		{"not a tty", map[string]string{"TERM": "xterm"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := stubOSC52(t, tc.env, tc.tty)
			assert.Error(t, Copy("x"))
			assert.Empty(t, buf.String())
		})
	}
}
