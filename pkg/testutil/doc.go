// Package testutil provides utilities for testing lppm components.
//
// Key components:
//   - NewMemFS: afero-backed in-memory types.FS
//   - ErrorFS: wraps a types.FS and fails chosen operations on chosen paths
//   - Prompter, Confirmer, Runner, WorkingDir: recording stand-ins for the
//     interactive and process-level collaborators
//
// All test data should be defined inline with WriteTree.
package testutil
