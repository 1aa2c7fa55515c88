package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "LPPM_"

var envKeys = map[string]string{
	"LPPM_SHELL":         "shell.path",
	"LPPM_SHELL_FLAG":    "shell.flag",
	"LPPM_TEMPLATES_DIR": "paths.templates_dir",
	"LPPM_COLOR":         "output.color",
}

// Config is the resolved lppm configuration
type Config struct {
	Shell  Shell  `koanf:"shell"`
	Paths  Paths  `koanf:"paths"`
	Output Output `koanf:"output"`
}

// Shell selects the interpreter for template commands
type Shell struct {
	Path string `koanf:"path"`
	Flag string `koanf:"flag"`
}

// Paths holds filesystem overrides
type Paths struct {
	TemplatesDir string `koanf:"templates_dir"`
}

// Output controls console rendering
type Output struct {
	Color string `koanf:"color"`
}

// Load resolves the configuration. configFile may not exist. overrides maps
// dotted keys such as "paths.templates_dir" to values; empty strings are
// ignored.
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. User config file
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFormat, "failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load env vars")
	}

	// 4. Explicit overrides
	if set := nonEmpty(overrides); len(set) > 0 {
		if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrFormat, "failed to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		c.Output.Color = ColorAuto
	default:
		return errors.Newf(errors.ErrInvalidInput, "invalid output.color `%s`", c.Output.Color).
			WithDetail("allowed", []string{ColorAuto, ColorAlways, ColorNever})
	}

	if strings.TrimSpace(c.Shell.Path) == "" {
		return errors.New(errors.ErrInvalidInput, "shell.path must not be empty")
	}
	return nil
}

// envKey maps a recognized LPPM_* variable to its config key. Others are
// dropped.
func envKey(s string) string {
	return envKeys[s]
}

func nonEmpty(overrides map[string]interface{}) map[string]interface{} {
	set := make(map[string]interface{}, len(overrides))
	for key, value := range overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		if value == nil {
			continue
		}
		set[key] = value
	}
	return set
}
