package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lppm/pkg/filesystem"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewMemFS creates an empty in-memory filesystem
func NewMemFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteTree creates files, relative to dir, with the given contents
func WriteTree(t *testing.T, fsys types.FS, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	for rel, content := range files {
		full := filepath.Join(dir, rel)
		require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, fsys.WriteFile(full, []byte(content), 0644))
	}
}

// ReadString returns the content of path
func ReadString(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Op names a filesystem operation for error injection
type Op string

// Operations ErrorFS can fail
const (
	OpReadFile  Op = "ReadFile"
	OpWriteFile Op = "WriteFile"
	OpMkdirAll  Op = "MkdirAll"
	OpReadDir   Op = "ReadDir"
	OpRemoveAll Op = "RemoveAll"
)

// ErrorFS returns injected errors for chosen operations and paths and
// delegates everything else
type ErrorFS struct {
	types.FS
	errs map[Op]map[string]error
}

// NewErrorFS wraps base
func NewErrorFS(base types.FS) *ErrorFS {
	return &ErrorFS{FS: base, errs: map[Op]map[string]error{}}
}

// FailOn makes op on path return err
func (e *ErrorFS) FailOn(op Op, path string, err error) *ErrorFS {
	if e.errs[op] == nil {
		e.errs[op] = map[string]error{}
	}
	e.errs[op][filepath.Clean(path)] = err
	return e
}

func (e *ErrorFS) injected(op Op, path string) error {
	return e.errs[op][filepath.Clean(path)]
}

func (e *ErrorFS) ReadFile(name string) ([]byte, error) {
	if err := e.injected(OpReadFile, name); err != nil {
		return nil, err
	}
	return e.FS.ReadFile(name)
}

func (e *ErrorFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := e.injected(OpWriteFile, name); err != nil {
		return err
	}
	return e.FS.WriteFile(name, data, perm)
}

func (e *ErrorFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := e.injected(OpMkdirAll, path); err != nil {
		return err
	}
	return e.FS.MkdirAll(path, perm)
}

func (e *ErrorFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := e.injected(OpReadDir, name); err != nil {
		return nil, err
	}
	return e.FS.ReadDir(name)
}

func (e *ErrorFS) RemoveAll(path string) error {
	if err := e.injected(OpRemoveAll, path); err != nil {
		return err
	}
	return e.FS.RemoveAll(path)
}
