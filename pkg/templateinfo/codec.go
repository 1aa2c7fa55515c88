package templateinfo

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/arthur-debert/lppm/pkg/errors"
)

// Header is the literal first line of every version 1 metadata file
const Header = "LPPM TEMPLATE V1"

type scanState int

const (
	stateOutside scanState = iota
	stateInsideCommand
	stateAfterCommand
)

// Parse decodes a metadata file. source names the input in error messages.
func Parse(r io.Reader, source string) (*Info, error) {
	reader := bufio.NewReader(r)

	headerLine, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read header from `%s`", source)
	}
	if headerLine == "" {
		return nil, errors.Newf(errors.ErrFormat, "cannot read header from `%s` - file is empty", source).
			WithDetail("source", source)
	}
	if strings.TrimSpace(headerLine) != Header {
		return nil, errors.Newf(errors.ErrFormat, "header contained in `%s` is invalid for current lppm version", source).
			WithDetail("source", source).
			WithDetail("header", strings.TrimSpace(headerLine))
	}

	commandsLine, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read commands from `%s`", source)
	}

	commands, err := parseCommands(strings.TrimSpace(commandsLine), source)
	if err != nil {
		return nil, err
	}
	return &Info{commands: commands}, nil
}

// ParseBytes is Parse over an in-memory file
func ParseBytes(data []byte, source string) (*Info, error) {
	return Parse(bytes.NewReader(data), source)
}

// parseCommands runs the quoted command list scanner over a trimmed line
func parseCommands(line, source string) ([]string, error) {
	commands := []string{}
	if line == "" {
		return commands, nil
	}

	state := stateOutside
	escaped := false
	var current strings.Builder

	for _, ch := range line {
		switch state {
		case stateOutside:
			if ch != '"' {
				return nil, errors.Newf(errors.ErrFormat,
					"commands line in `%s` is malformed - expected command list, but \" was not found", source).
					WithDetail("source", source)
			}
			state = stateInsideCommand

		case stateInsideCommand:
			if escaped {
				current.WriteRune(ch)
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = true
			case '"':
				commands = append(commands, current.String())
				current.Reset()
				state = stateAfterCommand
			default:
				current.WriteRune(ch)
			}

		case stateAfterCommand:
			if unicode.IsSpace(ch) {
				continue
			}
			if ch != ';' {
				return nil, errors.Newf(errors.ErrFormat,
					"commands line in `%s` is malformed - expected semicolon after `%s` command",
					source, commands[len(commands)-1]).
					WithDetail("source", source)
			}
			state = stateOutside
		}
	}

	if state == stateInsideCommand {
		return nil, errors.Newf(errors.ErrFormat,
			"commands line in `%s` is malformed - unfinished command `%s`", source, current.String()).
			WithDetail("source", source)
	}
	return commands, nil
}

// Marshal encodes info in the metadata file format
func (i *Info) Marshal() []byte {
	var b bytes.Buffer
	b.WriteString(Header)
	b.WriteByte('\n')
	if len(i.commands) > 0 {
		for _, command := range i.commands {
			b.WriteByte('"')
			b.WriteString(escape(command))
			b.WriteString(`";`)
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func escape(command string) string {
	if !strings.ContainsAny(command, `"\`) {
		return command
	}
	var b strings.Builder
	for _, ch := range command {
		if ch == '"' || ch == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	return b.String()
}
