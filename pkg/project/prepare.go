package project

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/filesystem"
	"github.com/arthur-debert/lppm/pkg/types"
)

// Init instantiates into an existing, empty targetDir
func (i *Instantiator) Init(ctx context.Context, templateName, targetDir string, globals types.Mapping) error {
	target, err := filepath.Abs(targetDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for `%s`", targetDir)
	}

	if !filesystem.IsDir(i.fs, target) {
		return errors.Newf(errors.ErrNotFound, "cannot find target directory `%s`", target).
			WithDetail("path", target)
	}
	empty, err := filesystem.IsEmptyDir(i.fs, target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot list target directory `%s`", target)
	}
	if !empty {
		return errors.Newf(errors.ErrAlreadyExists, "target directory `%s` is not empty", target).
			WithDetail("path", target)
	}

	return i.Instantiate(ctx, templateName, target, globals)
}

// Create makes targetDir, which must not exist yet, and instantiates into it.
// An empty targetDir defaults to the template name.
func (i *Instantiator) Create(ctx context.Context, templateName, targetDir string, globals types.Mapping) error {
	if targetDir == "" {
		targetDir = templateName
	}

	if filesystem.Exists(i.fs, targetDir) {
		return errors.Newf(errors.ErrAlreadyExists, "target directory `%s` already exists", targetDir).
			WithDetail("path", targetDir)
	}
	if err := i.fs.MkdirAll(targetDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create target directory `%s`", targetDir)
	}

	return i.Init(ctx, templateName, targetDir, globals)
}
