// Package executor runs a template's post-creation commands.
//
// Commands run one at a time through the host shell with the new project
// directory as the process working directory. The previous working directory
// is recorded before the first command and restored on every exit path,
// including a failing command or a directory that cannot be entered.
package executor
