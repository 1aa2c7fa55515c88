package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

func newProjectCmd(env *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Short:   MsgProjectShort,
		Example: MsgProjectExample,
	}

	cmd.AddCommand(newProjectCreateCmd(env))
	cmd.AddCommand(newProjectInitCmd(env))
	return cmd
}

func newProjectCreateCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:     "create <template> [target]",
		Aliases: []string{"new"},
		Short:   MsgProjectCreateShort,
		Long:    MsgProjectCreateLong,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if len(args) == 2 {
				target = args[1]
			}

			a, store, err := loadGlobals(env)
			if err != nil {
				return err
			}
			if err := a.instantiator.Create(cmd.Context(), args[0], target, store.Mapping()); err != nil {
				return err
			}
			a.printer.Info(MsgProjectCreated, absPath(target), args[0])
			return nil
		},
	}
}

func newProjectInitCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init <template> <target>",
		Short: MsgProjectInitShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, store, err := loadGlobals(env)
			if err != nil {
				return err
			}
			if err := a.instantiator.Init(cmd.Context(), args[0], args[1], store.Mapping()); err != nil {
				return err
			}
			a.printer.Info(MsgProjectCreated, absPath(args[1]), args[0])
			return nil
		},
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
