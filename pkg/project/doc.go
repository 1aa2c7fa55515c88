// Package project instantiates new projects from saved templates.
//
// Instantiation copies a template's payload into an empty target directory.
// Every path, relative to the template root and prefixed with the target
// directory, and every file's content go through @@VARIABLE@@ substitution
// with one working mapping: the global variables plus PROJECT_NAME, the last
// element of the target directory. Answers given for unknown variables are
// remembered for the rest of the run, including the template's post-creation
// commands, which run last inside the target directory.
//
// The pipeline fails fast. Files already written are left in place.
package project
