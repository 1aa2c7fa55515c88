package cli

import (
	"github.com/arthur-debert/lppm/pkg/config"
	"github.com/arthur-debert/lppm/pkg/executor"
	"github.com/arthur-debert/lppm/pkg/filesystem"
	"github.com/arthur-debert/lppm/pkg/globals"
	"github.com/arthur-debert/lppm/pkg/logging"
	"github.com/arthur-debert/lppm/pkg/paths"
	"github.com/arthur-debert/lppm/pkg/project"
	"github.com/arthur-debert/lppm/pkg/substitution"
	"github.com/arthur-debert/lppm/pkg/template"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/arthur-debert/lppm/pkg/ui/output"
	"github.com/arthur-debert/lppm/pkg/ui/prompt"
)

// env builds the collaborators commands need, once per invocation
type env struct {
	opts    *rootOptions
	streams Streams
	app     *app
}

// app is the wired set of services behind every command
type app struct {
	paths        paths.Paths
	config       *config.Config
	fs           types.FS
	printer      *output.Printer
	console      *prompt.Console
	confirmer    types.Confirmer
	repo         *template.Repository
	engine       *substitution.Engine
	instantiator *project.Instantiator
}

func newEnv(opts *rootOptions, streams Streams) *env {
	return &env{opts: opts, streams: streams}
}

// newFallbackPrinter prints errors that happen before configuration is known
func newFallbackPrinter(streams Streams) *output.Printer {
	return output.NewPrinter(streams.Out, streams.Err, output.ColorAuto)
}

// errorPrinter is the configured printer once the env has loaded, else the
// fallback
func (e *env) errorPrinter() *output.Printer {
	if e.app != nil {
		return e.app.printer
	}
	return newFallbackPrinter(e.streams)
}

// load resolves paths and configuration and wires the services
func (e *env) load() (*app, error) {
	if e.app != nil {
		return e.app, nil
	}
	logger := logging.GetLogger("cli")

	p, err := paths.New(e.opts.configDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.ConfigFilePath(), map[string]interface{}{
		"paths.templates_dir": e.opts.templatesDir,
		"output.color":        e.opts.color,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Paths.TemplatesDir != "" {
		if p, err = paths.WithTemplatesDir(p, cfg.Paths.TemplatesDir); err != nil {
			return nil, err
		}
	}

	fs := filesystem.NewOS()
	printer := output.NewPrinter(e.streams.Out, e.streams.Err, cfg.Output.Color)
	console := prompt.NewConsole(e.streams.In, printer)

	var confirmer types.Confirmer = console
	if e.opts.yes {
		confirmer = prompt.AlwaysYes{}
	}

	engine := substitution.New(console)
	runner := executor.NewShellRunner(cfg.Shell.Path, cfg.Shell.Flag)
	runner.Input = console
	runner.Stdout = e.streams.Out
	runner.Stderr = e.streams.Err

	repo := template.NewRepository(fs, p.TemplatesDir(), confirmer).WithNotifier(printer)

	e.app = &app{
		paths:     p,
		config:    cfg,
		fs:        fs,
		printer:   printer,
		console:   console,
		confirmer: confirmer,
		repo:      repo,
		engine:    engine,
		instantiator: project.New(project.Options{
			FS:         fs,
			Repository: repo,
			Engine:     engine,
			Executor: executor.New(executor.Options{
				Runner:   runner,
				Engine:   engine,
				Notifier: printer,
			}),
		}),
	}

	logger.Debug().
		Str("configDir", p.ConfigDir()).
		Str("templatesDir", p.TemplatesDir()).
		Str("shell", cfg.Shell.Path).
		Msg("Environment loaded")
	return e.app, nil
}

// globals loads the global variable store
func (a *app) globals() (*globals.Store, error) {
	return globals.Load(a.fs, a.paths.GlobalsFilePath(), a.confirmer)
}
