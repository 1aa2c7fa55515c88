package types

import (
	"context"
	"io/fs"
)

// FS defines the filesystem operations lppm relies on
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Prompter asks the user for a free-form value.
//
// An empty defaultValue means the user must type a non-empty answer.
type Prompter interface {
	PromptValue(prompt, defaultValue string) (string, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// CommandRunner runs a single shell command in the process working directory
// and returns its exit code. An error means the command could not be started.
type CommandRunner interface {
	Run(ctx context.Context, command string) (int, error)
}

// WorkingDir reads and changes the process working directory
type WorkingDir interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// Notifier shows a warning to the user
type Notifier interface {
	Warning(format string, args ...interface{})
}
