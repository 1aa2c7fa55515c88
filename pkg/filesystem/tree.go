package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/lppm/pkg/types"
)

// IsDir reports whether path exists and is a directory
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether path exists and is a regular file
func IsRegularFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Exists reports whether anything is present at path
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}

// IsEmptyDir reports whether path is a directory with no entries
func IsEmptyDir(fsys types.FS, path string) (bool, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// CopyTree recursively copies the contents of src into dst, creating dst if
// needed. File permissions are preserved. A symlink is copied as what it
// points to; a link to a directory becomes an empty directory and is not
// descended into.
func CopyTree(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fmt.Errorf("not a directory")}
	}
	if err := fsys.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyTree(fsys, srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		entryInfo, err := fsys.Stat(srcPath)
		if err != nil {
			return err
		}
		if entryInfo.IsDir() {
			if err := fsys.MkdirAll(dstPath, entryInfo.Mode().Perm()|0700); err != nil {
				return err
			}
			continue
		}
		data, err := fsys.ReadFile(srcPath)
		if err != nil {
			return err
		}
		if err := fsys.WriteFile(dstPath, data, entryInfo.Mode().Perm()); err != nil {
			return err
		}
	}
	return nil
}
