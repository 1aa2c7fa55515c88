// Package prompt asks the user for values and confirmations on a console.
package prompt

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/ui/output"
)

// Console implements types.Prompter and types.Confirmer over a reader and
// a printer
type Console struct {
	in      io.Reader
	reader  *bufio.Reader
	printer *output.Printer
}

// NewConsole creates a console reading answers from r
func NewConsole(r io.Reader, printer *output.Printer) *Console {
	return &Console{in: r, reader: bufio.NewReader(r), printer: printer}
}

// Stdin returns the reader a child process should use as its stdin. Input
// the console read ahead but did not consume comes first. When nothing is
// pending and the console reads a file, the file itself is returned so the
// child inherits it.
func (c *Console) Stdin() io.Reader {
	if f, ok := c.in.(*os.File); ok && c.reader.Buffered() == 0 {
		return f
	}
	return c.reader
}

// NewStdConsole reads from the process stdin
func NewStdConsole(printer *output.Printer) *Console {
	return NewConsole(os.Stdin, printer)
}

// PromptValue asks until it gets a non-empty answer. An empty answer
// selects defaultValue when there is one.
func (c *Console) PromptValue(prompt, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(c.printer.Out(), "%s [%s %s]: ",
				prompt, c.printer.Style("Key", "default:"), c.printer.Style("Value", defaultValue))
		} else {
			fmt.Fprintf(c.printer.Out(), "%s: ", prompt)
		}

		answer, err := c.readLine()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if defaultValue != "" {
			return defaultValue, nil
		}
		c.printer.Warning("please provide a non-empty input")
	}
}

// PromptOptional asks once and accepts an empty answer
func (c *Console) PromptOptional(prompt string) (string, error) {
	fmt.Fprintf(c.printer.Out(), "%s: ", prompt)
	return c.readLine()
}

// Confirm asks a Y/N question until it gets either answer
func (c *Console) Confirm(prompt string) (bool, error) {
	for {
		fmt.Fprintf(c.printer.Out(), "%s [%s]: ", prompt, c.printer.Style("Value", "Y/N"))

		answer, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		case "":
			c.printer.Warning("please enter Y or N to make a choice")
		default:
			c.printer.Warning("invalid input `%s`, please try again", answer)
		}
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if stderrors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", errors.Wrap(err, errors.ErrIO, "failed to read user input")
	}
	return strings.TrimSpace(line), nil
}

// AlwaysYes confirms everything without asking
type AlwaysYes struct{}

// Confirm implements types.Confirmer
func (AlwaysYes) Confirm(string) (bool, error) {
	return true, nil
}
