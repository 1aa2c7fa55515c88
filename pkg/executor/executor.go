package executor

import (
	"context"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/logging"
	"github.com/arthur-debert/lppm/pkg/substitution"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	Runner     types.CommandRunner
	WorkingDir types.WorkingDir
	Engine     *substitution.Engine
	Notifier   types.Notifier
	Logger     zerolog.Logger
}

// Executor runs command lists at a directory
type Executor struct {
	runner   types.CommandRunner
	wd       types.WorkingDir
	engine   *substitution.Engine
	notifier types.Notifier
	logger   zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	wd := opts.WorkingDir
	if wd == nil {
		wd = OSWorkingDir{}
	}

	runner := opts.Runner
	if runner == nil {
		runner = NewShellRunner(DefaultShell, DefaultShellFlag)
	}

	return &Executor{
		runner:   runner,
		wd:       wd,
		engine:   opts.Engine,
		notifier: opts.Notifier,
		logger:   logger,
	}
}

// RunCommandsAt substitutes and runs commands in order with dir as the
// working directory, stopping at the first command that exits non-zero.
func (e *Executor) RunCommandsAt(ctx context.Context, dir string, commands []string, mapping types.Mapping) error {
	saved, err := e.wd.Getwd()
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "could not determine current working directory")
	}
	defer e.restore(saved)

	if err := e.wd.Chdir(dir); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not change working directory to `%s`", dir).
			WithDetail("dir", dir)
	}

	for i, command := range commands {
		substituted, err := e.engine.Substitute(command, mapping)
		if err != nil {
			return err
		}

		e.logger.Info().
			Int("index", i).
			Str("command", substituted).
			Str("dir", dir).
			Msg("Running template command")

		code, err := e.runner.Run(ctx, substituted)
		if err != nil {
			return err
		}
		if code != 0 {
			return errors.Newf(errors.ErrNonZeroExit,
				"executed command `%s` returned non-zero (%d) exit code", substituted, code).
				WithDetail("command", substituted).
				WithDetail("exit_code", code).
				WithDetail("index", i)
		}
	}
	return nil
}

func (e *Executor) restore(dir string) {
	if err := e.wd.Chdir(dir); err != nil {
		e.logger.Warn().
			Err(err).
			Str("dir", dir).
			Msg("Failed to restore working directory")
		if e.notifier != nil {
			e.notifier.Warning("could not restore working directory to `%s` - %s", dir, err)
		}
	}
}
