package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reeflective/readline"
)

// ErrInterrupted is returned by ReadLine when the user presses Ctrl+C.
var ErrInterrupted = fmt.Errorf("input interrupted")

// LineReader returns one line of raw user text per call. The returned text
// is trimmed; io.EOF means the input is closed.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// CompletionFunc lists the words offered for tab completion.
type CompletionFunc func() []string

// NewLineReader picks a readline shell when in is the terminal's stdin and a
// buffered scanner otherwise. complete may be nil.
func NewLineReader(in io.Reader, w io.Writer, complete CompletionFunc) LineReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin && IsTerminal(f) {
		return newShellReader(complete)
	}
	return NewScanReader(in, w)
}

// shellReader wraps a reeflective/readline shell. It only reads os.Stdin.
type shellReader struct {
	shell  *readline.Shell
	prompt string
}

func newShellReader(complete CompletionFunc) *shellReader {
	r := &shellReader{shell: readline.NewShell()}
	r.shell.Prompt.Primary(func() string { return r.prompt })
	if complete != nil {
		r.shell.Completer = func(line []rune, cursor int) readline.Completions {
			return readline.CompleteValues(complete()...)
		}
	}
	return r
}

func (r *shellReader) ReadLine(prompt string) (string, error) {
	r.prompt = Bold + prompt + Reset
	line, err := r.shell.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ScanReader reads newline-terminated input from any reader, echoing the
// prompt to w. It is used for pipes, files and tests.
type ScanReader struct {
	sc *bufio.Scanner
	w  io.Writer
}

// NewScanReader returns a ScanReader over in. w may be nil.
func NewScanReader(in io.Reader, w io.Writer) *ScanReader {
	if w == nil {
		w = io.Discard
	}
	return &ScanReader{sc: bufio.NewScanner(in), w: w}
}

// ReadLine implements LineReader.
func (r *ScanReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.sc.Text()), nil
}
