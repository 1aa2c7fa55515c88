package templateinfo

import (
	"os"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/types"
)

// Info holds the ordered commands run after a project is created
type Info struct {
	commands []string
}

// New creates an Info with the given commands, in execution order
func New(commands ...string) *Info {
	return &Info{commands: append([]string{}, commands...)}
}

// Commands returns a copy of the command list
func (i *Info) Commands() []string {
	return append([]string{}, i.commands...)
}

// Len returns the number of commands
func (i *Info) Len() int {
	return len(i.commands)
}

// AddCommand appends command to the end of the list
func (i *Info) AddCommand(command string) {
	i.commands = append(i.commands, command)
}

// RemoveCommandAt removes and returns the command at index.
// The list is left unchanged when index is out of range.
func (i *Info) RemoveCommandAt(index int) (string, error) {
	if index < 0 || index >= len(i.commands) {
		return "", errors.Newf(errors.ErrIndexOutOfRange,
			"cannot find a command with index %d (template has %d commands)", index, len(i.commands)).
			WithDetail("index", index).
			WithDetail("count", len(i.commands))
	}
	removed := i.commands[index]
	i.commands = append(i.commands[:index], i.commands[index+1:]...)
	return removed, nil
}

// Load reads and parses the metadata file at path
func Load(fs types.FS, path string) (*Info, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot find template info file `%s`", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot open file `%s` for reading", path).
			WithDetail("path", path)
	}
	return ParseBytes(data, path)
}

// Save writes info to path, replacing any existing file
func (i *Info) Save(fs types.FS, path string) error {
	if err := fs.WriteFile(path, i.Marshal(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot open file `%s` for writing", path).
			WithDetail("path", path)
	}
	return nil
}
