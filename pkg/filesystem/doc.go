// Package filesystem provides filesystem implementations for lppm.
//
// This package contains implementations of the types.FS interface,
// the OS filesystem and an afero-backed one used by tests, plus tree helpers
// shared by the template repository and the instantiation pipeline.
package filesystem
