package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Colors for terminal output.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

var out io.Writer = os.Stdout

// SetOutput redirects the status printers. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// UI helper functions.

// Success prints a green success message.
func Success(msg string) {
	fmt.Fprintf(out, "%s%s✓%s %s\n", Bold, Green, Reset, msg)
}

// Error prints a red error message.
func Error(msg string) {
	fmt.Fprintf(out, "%s%s✗%s %s\n", Bold, Red, Reset, msg)
}

// Info prints a blue info message.
func Info(msg string) {
	fmt.Fprintf(out, "%s%si%s %s\n", Bold, Blue, Reset, msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	fmt.Fprintf(out, "%s%s!%s %s\n", Bold, Yellow, Reset, msg)
}

// Header prints a bold header.
func Header(msg string) {
	fmt.Fprintf(out, "\n%s%s%s\n", Bold, msg, Reset)
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	fmt.Fprintf(out, "  %s%s:%s %s\n", Dim, label, Reset, value)
}

// Banner prints the welcome box with the given version.
func Banner(version string) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s╭─────────────────────────────────╮%s\n", Dim, Reset)
	fmt.Fprintf(out, "  %s│%s  Menuforge %s%-21s%s%s│%s\n", Dim, Reset, Bold, "v"+version, Reset, Dim, Reset)
	fmt.Fprintf(out, "  %s│%s  Terminal menu layout engine    %s│%s\n", Dim, Reset, Dim, Reset)
	fmt.Fprintf(out, "  %s╰─────────────────────────────────╯%s\n", Dim, Reset)
	fmt.Fprintln(out)
}
