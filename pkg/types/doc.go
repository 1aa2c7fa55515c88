// Package types defines the collaborator interfaces and shared data
// structures of lppm: the filesystem abstraction, the interactive prompt and
// confirmation capabilities, shell command execution, and the substitution
// variable Mapping.
package types
