package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })
	return &buf
}

func TestPrinters(t *testing.T) {
	buf := captureOutput(t)

	Success("saved")
	Error("failed")
	Warning("careful")
	Info("note")
	Detail("Skin", "phoenix")

	out := buf.String()
	assert.Contains(t, out, Green+"✓"+Reset+" saved\n")
	assert.Contains(t, out, Red+"✗"+Reset+" failed\n")
	assert.Contains(t, out, Yellow+"!"+Reset+" careful\n")
	assert.Contains(t, out, Blue+"i"+Reset+" note\n")
	assert.Contains(t, out, "  "+Dim+"Skin:"+Reset+" phoenix\n")
}

func TestBannerIncludesVersion(t *testing.T) {
	buf := captureOutput(t)
	Banner("1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestNewLineReaderUsesScannerForNonTerminal(t *testing.T) {
	r := NewLineReader(strings.NewReader("2\n"), io.Discard, nil)
	_, ok := r.(*ScanReader)
	assert.True(t, ok)
}

func TestScanReader(t *testing.T) {
	var prompts bytes.Buffer
	r := NewScanReader(strings.NewReader("  config \n\nquit\n"), &prompts)

	line, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "config", line)

	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "quit", line)

	_, err = r.ReadLine("> ")
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, "> > > > ", prompts.String())
}
