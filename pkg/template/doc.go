// Package template manages the saved project templates.
//
// A template is a directory under the templates root holding arbitrary
// payload files plus one metadata file (.lppm_template). The Repository
// loads, lists, creates, imports and removes templates, and edits a
// template's post-creation command list, persisting every change at once.
//
// Listing is best effort: subdirectories that fail to load are logged and
// skipped rather than failing the whole listing.
package template
