package executor

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/lppm/pkg/errors"
)

// Default shell invocation, overridable through configuration
const (
	DefaultShell     = "/bin/sh"
	DefaultShellFlag = "-c"
)

// stdinWaitDelay bounds how long a finished command waits for its stdin copy
// when stdin is not a file
const stdinWaitDelay = 100 * time.Millisecond

// StdinSource supplies a command's stdin at the moment it starts
type StdinSource interface {
	Stdin() io.Reader
}

// ShellRunner implements types.CommandRunner with <shell> <flag> <command>.
// When Input is set it takes precedence over Stdin.
type ShellRunner struct {
	Shell  string
	Flag   string
	Stdin  io.Reader
	Input  StdinSource
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner creates a runner wired to the process stdio
func NewShellRunner(shell, flag string) *ShellRunner {
	if shell == "" {
		shell = DefaultShell
	}
	if flag == "" {
		flag = DefaultShellFlag
	}
	return &ShellRunner{
		Shell:  shell,
		Flag:   flag,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes command and waits for it. A command that starts but exits
// non-zero is reported through the exit code, not the error.
func (r *ShellRunner) Run(ctx context.Context, command string) (int, error) {
	cmd := exec.CommandContext(ctx, r.Shell, r.Flag, command)
	cmd.Stdin = r.Stdin
	if r.Input != nil {
		cmd.Stdin = r.Input.Stdin()
	}
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.WaitDelay = stdinWaitDelay

	err := cmd.Run()
	if err == nil || stderrors.Is(err, exec.ErrWaitDelay) {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, errors.Wrapf(err, errors.ErrIO, "cannot start command `%s`", command).
		WithDetail("shell", r.Shell)
}

// OSWorkingDir implements types.WorkingDir over the process working directory
type OSWorkingDir struct{}

func (OSWorkingDir) Getwd() (string, error) {
	return os.Getwd()
}

func (OSWorkingDir) Chdir(dir string) error {
	return os.Chdir(dir)
}
