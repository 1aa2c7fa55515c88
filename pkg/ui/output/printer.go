package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/lppm/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes styled messages
type Printer struct {
	out   io.Writer
	err   io.Writer
	color bool
	r     *lipgloss.Renderer
}

// NewPrinter creates a printer. mode is one of the Color constants; auto
// enables color only when out is a terminal and NO_COLOR is not set.
func NewPrinter(out, errOut io.Writer, mode string) *Printer {
	color := ColorEnabled(mode, out)
	r := lipgloss.NewRenderer(out)
	if color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{out: out, err: errOut, color: color, r: r}
}

// NewStdPrinter prints to the process stdout and stderr
func NewStdPrinter(mode string) *Printer {
	return NewPrinter(os.Stdout, os.Stderr, mode)
}

// ColorEnabled resolves a color mode against the writer
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Color reports whether output is styled
func (p *Printer) Color() bool {
	return p.color
}

// Out returns the writer for regular output
func (p *Printer) Out() io.Writer {
	return p.out
}

// Err returns the writer for diagnostics
func (p *Printer) Err() io.Writer {
	return p.err
}

// Style renders text with the named style when color is enabled
func (p *Printer) Style(name, text string) string {
	if !p.color {
		return text
	}
	return p.r.NewStyle().Inherit(styles.GetStyle(name)).Render(text)
}

// Line prints message unchanged
func (p *Printer) Line(message string) {
	fmt.Fprintln(p.out, message)
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.Style("Info", "info: "+fmt.Sprintf(format, args...)))
}

// Success prints a completion message
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.Style("Success", fmt.Sprintf(format, args...)))
}

// Warning prints a warning to the err writer
func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintln(p.err, p.Style("Warning", "warning: "+fmt.Sprintf(format, args...)))
}

// Error prints an error to the err writer
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintln(p.err, p.Style("Error", "error: "+fmt.Sprintf(format, args...)))
}

// Fatal prints the message for an error that ends the program
func (p *Printer) Fatal(err error) {
	fmt.Fprintln(p.err, p.Style("Fatal", "fatal: "+err.Error()))
}

// KeyValue prints a `key: value` line
func (p *Printer) KeyValue(key, value string) {
	fmt.Fprintf(p.out, "%s: %s\n", p.Style("Key", key), p.Style("Value", value))
}

// Header prints a section title
func (p *Printer) Header(title string) {
	fmt.Fprintln(p.out, p.Style("Header", title))
}

// List prints items with their zero-based index
func (p *Printer) List(items []string) {
	for i, item := range items {
		fmt.Fprintf(p.out, "%s%s\n", p.Style("Index", fmt.Sprintf("[%d] ", i)), item)
	}
}

// Muted prints de-emphasized text
func (p *Printer) Muted(message string) {
	fmt.Fprintln(p.out, p.Style("Muted", message))
}
