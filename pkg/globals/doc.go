// Package globals manages the user's global substitution variables.
//
// Globals are stored as a TOML document with a single [variables] table:
//
//	[variables]
//	AUTHOR = "Ann Smith"
//	LICENSE = "MIT"
//
// Every project instantiation starts from a copy of this mapping.
package globals
