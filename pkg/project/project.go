package project

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/executor"
	"github.com/arthur-debert/lppm/pkg/filesystem"
	"github.com/arthur-debert/lppm/pkg/logging"
	"github.com/arthur-debert/lppm/pkg/substitution"
	"github.com/arthur-debert/lppm/pkg/template"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains the collaborators of an Instantiator
type Options struct {
	FS         types.FS
	Repository *template.Repository
	Engine     *substitution.Engine
	Executor   *executor.Executor
	Logger     zerolog.Logger
}

// Instantiator creates projects from templates
type Instantiator struct {
	fs       types.FS
	repo     *template.Repository
	engine   *substitution.Engine
	executor *executor.Executor
	logger   zerolog.Logger
}

// New creates a new Instantiator
func New(opts Options) *Instantiator {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("project")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &Instantiator{
		fs:       fsys,
		repo:     opts.Repository,
		engine:   opts.Engine,
		executor: opts.Executor,
		logger:   logger,
	}
}

// WorkingMapping copies globals and sets PROJECT_NAME from targetDir
func WorkingMapping(globals types.Mapping, targetDir string) types.Mapping {
	mapping := globals.Clone()
	mapping[types.ProjectNameVariable] = filepath.Base(filepath.Clean(targetDir))
	return mapping
}

// Instantiate fills targetDir, which must exist and be empty, from the
// template called templateName and then runs the template's commands there.
func (i *Instantiator) Instantiate(ctx context.Context, templateName, targetDir string, globals types.Mapping) error {
	done := logging.LogOperationStart(i.logger, "instantiate")
	defer done()

	tpl, err := i.repo.Get(templateName)
	if err != nil {
		return err
	}

	target, err := filepath.Abs(targetDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for `%s`", targetDir)
	}

	mapping := WorkingMapping(globals, target)

	i.logger.Info().
		Str("template", templateName).
		Str("source", tpl.BaseDir).
		Str("target", target).
		Msg("Instantiating template")

	w := &walker{
		fs:       i.fs,
		engine:   i.engine,
		logger:   i.logger,
		base:     tpl.BaseDir,
		target:   target,
		infoPath: tpl.InfoPath(),
		mapping:  mapping,
	}
	if err := w.walk(tpl.BaseDir); err != nil {
		return err
	}

	if err := i.executor.RunCommandsAt(ctx, target, tpl.Info.Commands(), mapping); err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "running commands of template `%s`", templateName).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail("template", templateName)
	}

	i.logger.Info().
		Str("template", templateName).
		Str("target", target).
		Msg("Project created")
	return nil
}

// walker copies a template tree depth first, in directory-entry name order
type walker struct {
	fs       types.FS
	engine   *substitution.Engine
	logger   zerolog.Logger
	base     string
	target   string
	infoPath string
	mapping  types.Mapping
}

func (w *walker) walk(dir string) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not read template directory `%s`", dir).
			WithDetail("step", "walk")
	}

	for _, entry := range entries {
		source := filepath.Join(dir, entry.Name())
		isDir, err := w.isDir(source, entry)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(w.base, source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "could not relate `%s` to template root", source)
		}
		destination, err := w.engine.Substitute(filepath.Join(w.target, rel), w.mapping)
		if err != nil {
			return err
		}

		if isDir {
			if err := w.fs.MkdirAll(destination, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "could not create a directory `%s`", destination).
					WithDetail("step", "mkdir")
			}
			// Symlinked directories are created but not descended into
			if entry.IsDir() {
				if err := w.walk(source); err != nil {
					return err
				}
			}
			continue
		}

		if source == w.infoPath {
			continue
		}

		if err := w.copyFile(source, destination); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) isDir(source string, entry fs.DirEntry) (bool, error) {
	if entry.IsDir() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := w.fs.Stat(source)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "could not resolve symlink `%s`", source)
	}
	return info.IsDir(), nil
}

func (w *walker) copyFile(source, destination string) error {
	parent := filepath.Dir(destination)
	if err := w.fs.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not create a directory `%s`", parent).
			WithDetail("step", "mkdir")
	}

	info, err := w.fs.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not read contents of file `%s`", source).
			WithDetail("step", "read")
	}
	content, err := w.fs.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not read contents of file `%s`", source).
			WithDetail("step", "read")
	}

	substituted, err := w.engine.Substitute(string(content), w.mapping)
	if err != nil {
		return err
	}

	if err := w.fs.WriteFile(destination, []byte(substituted), info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not create a file `%s`", destination).
			WithDetail("step", "write")
	}

	w.logger.Debug().Str("source", source).Str("destination", destination).Msg("Copied template file")
	return nil
}
