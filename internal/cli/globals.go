package cli

import (
	"github.com/arthur-debert/lppm/pkg/globals"
	"github.com/spf13/cobra"
)

func newGlobalsCmd(env *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "globals",
		Short: MsgGlobalsShort,
	}

	cmd.AddCommand(newGlobalsGetCmd(env))
	cmd.AddCommand(newGlobalsSetCmd(env))
	cmd.AddCommand(newGlobalsUnsetCmd(env))
	cmd.AddCommand(newGlobalsListCmd(env))
	cmd.AddCommand(newGlobalsInitCmd(env))
	return cmd
}

func newGlobalsGetCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: MsgGlobalsGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, store, err := loadGlobals(env)
			if err != nil {
				return err
			}
			value, err := store.Get(args[0])
			if err != nil {
				return err
			}
			a.printer.KeyValue(args[0], value)
			return nil
		},
	}
}

func newGlobalsSetCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: MsgGlobalsSetShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, store, err := loadGlobals(env)
			if err != nil {
				return err
			}
			if err := store.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}
			a.printer.Info(MsgGlobalSet, args[0])
			return nil
		},
	}
}

func newGlobalsUnsetCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <name>",
		Short: MsgGlobalsUnsetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, store, err := loadGlobals(env)
			if err != nil {
				return err
			}
			if err := store.Unset(args[0]); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}
			a.printer.Info(MsgGlobalUnset, args[0])
			return nil
		},
	}
}

func newGlobalsListCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgGlobalsListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, store, err := loadGlobals(env)
			if err != nil {
				return err
			}
			keys := store.Keys()
			if len(keys) == 0 {
				a.printer.Info(MsgGlobalsEmpty)
				return nil
			}
			for _, key := range keys {
				value, _ := store.Get(key)
				a.printer.KeyValue(key, value)
			}
			return nil
		},
	}
}

func newGlobalsInitCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgGlobalsInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, store, err := loadGlobals(env)
			if err != nil {
				return err
			}
			return store.Init(a.console, globals.DefaultQuestions)
		},
	}
}

func loadGlobals(env *env) (*app, *globals.Store, error) {
	a, err := env.load()
	if err != nil {
		return nil, nil, err
	}
	store, err := a.globals()
	if err != nil {
		return nil, nil, err
	}
	return a, store, nil
}
