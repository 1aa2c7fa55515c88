// Package config loads lppm's settings.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. <config-root>/config.toml, if present
//  3. LPPM_SHELL, LPPM_SHELL_FLAG, LPPM_TEMPLATES_DIR and LPPM_COLOR
//  4. explicit overrides, usually command line flags
package config
