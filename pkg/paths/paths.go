package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/lppm/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for lppm
	EnvConfigDir = "LPPM_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"
)

// Fixed names inside the config root. These define the on-disk layout and
// are shared by every lppm installation.
const (
	// AppDirName is the directory name for lppm-specific files
	AppDirName = "lppm"

	// TemplatesDirName is the subdirectory holding templates
	TemplatesDirName = "templates"

	// TemplateInfoFileName is the metadata file inside every template
	TemplateInfoFileName = ".lppm_template"

	// GlobalsFileName is the name of the global variables file
	GlobalsFileName = "globals.toml"

	// ConfigFileName is the name of the tool configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "lppm.log"
)

// Paths provides centralized path management for lppm
type Paths interface {
	ConfigDir() string
	ConfigFilePath() string
	GlobalsFilePath() string
	TemplatesDir() string
	TemplatePath(name string) string
	TemplateInfoPath(name string) string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	configDir    string
	templatesDir string
	stateDir     string
}

// New creates a new Paths instance rooted at configDir.
// If configDir is empty, it is determined from $LPPM_CONFIG_DIR or XDG.
func New(configDir string) (Paths, error) {
	p := &paths{}

	if configDir == "" {
		configDir = os.Getenv(EnvConfigDir)
	}
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	abs, err := filepath.Abs(expandHome(configDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for config directory")
	}
	p.configDir = abs
	p.templatesDir = filepath.Join(abs, TemplatesDirName)
	p.stateDir = filepath.Join(StateHome(), AppDirName)

	return p, nil
}

// WithTemplatesDir returns a copy of p whose templates live under dir
func WithTemplatesDir(p Paths, dir string) (Paths, error) {
	abs, err := filepath.Abs(expandHome(dir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for templates directory")
	}
	return &paths{
		configDir:    p.ConfigDir(),
		templatesDir: abs,
		stateDir:     p.StateDir(),
	}, nil
}

// StateHome returns the XDG state directory. $XDG_STATE_HOME is read on every
// call so a value set after startup is honored.
func StateHome() string {
	if dir := os.Getenv(EnvStateHome); dir != "" {
		return dir
	}
	return xdg.StateHome
}

// DefaultLogFilePath returns the log file under the state directory
func DefaultLogFilePath() string {
	return filepath.Join(StateHome(), AppDirName, LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome expands a leading ~ in path
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) GlobalsFilePath() string {
	return filepath.Join(p.configDir, GlobalsFileName)
}

func (p *paths) TemplatesDir() string {
	return p.templatesDir
}

// TemplatePath returns the base directory of the named template
func (p *paths) TemplatePath(name string) string {
	return filepath.Join(p.templatesDir, name)
}

// TemplateInfoPath returns the metadata file of the named template
func (p *paths) TemplateInfoPath(name string) string {
	return filepath.Join(p.TemplatePath(name), TemplateInfoFileName)
}

func (p *paths) StateDir() string {
	return p.stateDir
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
