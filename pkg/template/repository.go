package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/filesystem"
	"github.com/arthur-debert/lppm/pkg/logging"
	"github.com/arthur-debert/lppm/pkg/paths"
	"github.com/arthur-debert/lppm/pkg/templateinfo"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/rs/zerolog"
)

// Repository locates and manages templates under a templates root
type Repository struct {
	fs        types.FS
	root      string
	confirmer types.Confirmer
	notifier  types.Notifier
	logger    zerolog.Logger
}

// NewRepository creates a Repository over the templates root directory.
// confirmer is asked before any destructive change.
func NewRepository(fsys types.FS, root string, confirmer types.Confirmer) *Repository {
	return &Repository{
		fs:        fsys,
		root:      root,
		confirmer: confirmer,
		logger:    logging.GetLogger("template"),
	}
}

// WithNotifier makes the repository show its warnings through n as well as
// the log
func (r *Repository) WithNotifier(n types.Notifier) *Repository {
	r.notifier = n
	return r
}

// Root returns the templates root directory
func (r *Repository) Root() string {
	return r.root
}

// PathFor returns the base directory a template called name would use
func (r *Repository) PathFor(name string) string {
	return filepath.Join(r.root, name)
}

// Load reads the template stored in directory path
func (r *Repository) Load(path string) (*Template, error) {
	if !filesystem.IsDir(r.fs, path) {
		return nil, errors.Newf(errors.ErrNotFound, "cannot read template directory `%s`", path).
			WithDetail("path", path).
			WithDetail("reason", "not_a_directory")
	}

	infoPath := filepath.Join(path, paths.TemplateInfoFileName)
	if !filesystem.IsRegularFile(r.fs, infoPath) {
		return nil, errors.Newf(errors.ErrNotFound, "cannot find or read template info file `%s`", infoPath).
			WithDetail("path", infoPath).
			WithDetail("reason", "missing_metadata")
	}

	info, err := templateinfo.Load(r.fs, infoPath)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for `%s`", path)
	}
	return &Template{BaseDir: abs, Info: info}, nil
}

// Get loads the template called name
func (r *Repository) Get(name string) (*Template, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return r.Load(r.PathFor(name))
}

// List returns every loadable template keyed by directory name.
// A missing templates root yields an empty map.
func (r *Repository) List() (map[string]*Template, error) {
	result := make(map[string]*Template)

	if !filesystem.IsDir(r.fs, r.root) {
		return result, nil
	}

	entries, err := r.fs.ReadDir(r.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot list templates directory `%s`", r.root)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.root, entry.Name())
		tpl, err := r.Load(dir)
		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("dir", dir).
				Msg("Skipping template directory that failed to load")
			r.warn("error occurred while loading a list of available templates at template directory `%s` - %s",
				dir, err)
			continue
		}
		result[entry.Name()] = tpl
	}

	return result, nil
}

// Create makes a new template called name.
//
// When sourceDir is non-empty its contents are copied in. When writeEmptyInfo
// is set a fresh metadata file with no commands is written, replacing any
// metadata file copied from sourceDir. On failure the new directory is
// removed again.
func (r *Repository) Create(name, sourceDir string, writeEmptyInfo bool) (*Template, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := r.fs.MkdirAll(r.root, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot create templates directory `%s`", r.root)
	}

	templatePath := r.PathFor(name)
	if filesystem.Exists(r.fs, templatePath) {
		return nil, errors.Newf(errors.ErrAlreadyExists,
			"tried to create a project template at path `%s`, but the file with this name already exists", templatePath).
			WithDetail("path", templatePath)
	}

	if err := r.fs.MkdirAll(templatePath, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO,
			"cannot create directory `%s` for newly created project template", templatePath)
	}

	if sourceDir != "" {
		if !filesystem.IsDir(r.fs, sourceDir) {
			r.rollback(templatePath)
			return nil, errors.Newf(errors.ErrNotFound, "cannot access source directory `%s`", sourceDir).
				WithDetail("path", sourceDir)
		}
		if err := filesystem.CopyTree(r.fs, sourceDir, templatePath); err != nil {
			r.rollback(templatePath)
			return nil, errors.Wrapf(err, errors.ErrIO,
				"cannot copy files from `%s` to newly created project template", sourceDir)
		}
	}

	if writeEmptyInfo {
		infoPath := filepath.Join(templatePath, paths.TemplateInfoFileName)
		if filesystem.Exists(r.fs, infoPath) {
			r.logger.Warn().
				Str("path", infoPath).
				Msg("Overwriting template info file copied from source directory")
			r.warn("template info file `%s` copied from `%s` is replaced by one without commands",
				infoPath, sourceDir)
		}
		if err := templateinfo.New().Save(r.fs, infoPath); err != nil {
			r.rollback(templatePath)
			return nil, errors.Wrapf(err, errors.ErrIO,
				"error occurred while writing a template info file `%s`", infoPath)
		}
	}

	tpl, err := r.Load(templatePath)
	if err != nil {
		panic(errors.Wrapf(err, errors.ErrInternal,
			"cannot load newly created template at `%s`", templatePath))
	}

	r.logger.Info().Str("name", name).Str("path", templatePath).Msg("Created template")
	return tpl, nil
}

// Import copies an existing template directory, which must already contain a
// valid metadata file, into the repository as name
func (r *Repository) Import(name, sourceDir string) (*Template, error) {
	infoPath := filepath.Join(sourceDir, paths.TemplateInfoFileName)
	if _, err := templateinfo.Load(r.fs, infoPath); err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err),
			"error occurred while reading imported template's info from file `%s`", infoPath).
			WithDetails(errors.GetErrorDetails(err))
	}
	return r.Create(name, sourceDir, false)
}

// Remove deletes the template after the user confirms. It reports whether
// anything was removed; declining is not an error.
func (r *Repository) Remove(name string, tpl *Template) (bool, error) {
	ok, err := r.confirmer.Confirm(fmt.Sprintf("do you really want to remove project template named `%s`", name))
	if err != nil {
		return false, err
	}
	if !ok {
		r.logger.Info().Str("name", name).Msg("Template removal declined")
		return false, nil
	}

	if err := r.fs.RemoveAll(tpl.BaseDir); err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "cannot remove files from template named `%s`", name)
	}
	r.logger.Info().Str("name", name).Str("path", tpl.BaseDir).Msg("Removed template")
	return true, nil
}

// AddCommand appends command to the template and saves its metadata
func (r *Repository) AddCommand(tpl *Template, command string) error {
	tpl.Info.AddCommand(command)
	return tpl.SaveInfo(r.fs)
}

// RemoveCommandAt removes the command at index after the user confirms, then
// saves the metadata. It reports whether a command was removed.
func (r *Repository) RemoveCommandAt(name string, tpl *Template, index int) (bool, error) {
	commands := tpl.Info.Commands()
	if index < 0 || index >= len(commands) {
		return false, errors.Newf(errors.ErrIndexOutOfRange,
			"cannot find a command with index %d in template named `%s`", index, name).
			WithDetail("index", index).
			WithDetail("count", len(commands))
	}

	ok, err := r.confirmer.Confirm(fmt.Sprintf(
		"do you really want to remove command `%s` from template named `%s`", commands[index], name))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if _, err := tpl.Info.RemoveCommandAt(index); err != nil {
		return false, err
	}
	if err := tpl.SaveInfo(r.fs); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) warn(format string, args ...interface{}) {
	if r.notifier != nil {
		r.notifier.Warning(format, args...)
	}
}

func (r *Repository) rollback(templatePath string) {
	if err := r.fs.RemoveAll(templatePath); err != nil && !os.IsNotExist(err) {
		r.logger.Warn().Err(err).Str("path", templatePath).Msg("Failed to clean up partially created template")
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrInvalidInput, "`%s` is not a valid template name", name).
			WithDetail("name", name)
	}
	return nil
}
