package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/lppm/internal/version"
	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/logging"
	"github.com/arthur-debert/lppm/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Streams are the standard streams commands read from and write to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process stdio
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// rootOptions holds the values of the persistent flags
type rootOptions struct {
	verbosity    int
	yes          bool
	configDir    string
	templatesDir string
	color        string
}

// NewRootCmd creates the root command wired to the process stdio
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithStreams(StdStreams())
}

// NewRootCmdWithStreams creates the root command using the given streams
func NewRootCmdWithStreams(streams Streams) *cobra.Command {
	rootCmd, _ := newRootCmd(streams)
	return rootCmd
}

func newRootCmd(streams Streams) (*cobra.Command, *env) {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}
	env := newEnv(opts, streams)

	rootCmd := &cobra.Command{
		Use:     "lppm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			if err := logging.SetupLogger(opts.verbosity, streams.Err, paths.DefaultLogFilePath()); err != nil {
				log.Warn().Err(err).Msg("Logging to console only")
			}
			log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", MsgFlagConfigDir)
	rootCmd.PersistentFlags().StringVar(&opts.templatesDir, "templates-dir", "", MsgFlagTemplatesDir)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newGlobalsCmd(env))
	rootCmd.AddCommand(newProjectCmd(env))
	rootCmd.AddCommand(newTemplateCmd(env))

	return rootCmd, env
}

// Execute runs the root command and prints a failure, returning the exit code
func Execute() int {
	return executeWith(StdStreams(), nil)
}

// executeWith runs lppm over streams. nil args means the process arguments.
func executeWith(streams Streams, args []string) int {
	rootCmd, env := newRootCmd(streams)
	if args != nil {
		rootCmd.SetArgs(args)
	}
	if err := rootCmd.Execute(); err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Interface("details", errors.GetErrorDetails(err)).
			Msg("Command failed")
		env.errorPrinter().Fatal(err)
		return 1
	}
	return 0
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, line := range version.Info() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}
