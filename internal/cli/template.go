package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/spf13/cobra"
)

func newTemplateCmd(env *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Short:   MsgTemplateShort,
		Example: MsgTemplateExample,
	}

	cmd.AddCommand(newTemplateListCmd(env))
	cmd.AddCommand(newTemplateCreateCmd(env))
	cmd.AddCommand(newTemplateImportCmd(env))
	cmd.AddCommand(newTemplateShowCmd(env))
	cmd.AddCommand(newTemplateRemoveCmd(env))
	cmd.AddCommand(newTemplateCmdCmd(env))
	return cmd
}

func newTemplateListCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgTemplateListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.load()
			if err != nil {
				return err
			}
			templates, err := a.repo.List()
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				a.printer.Info(MsgNoTemplates)
				return nil
			}

			names := make([]string, 0, len(templates))
			for name := range templates {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				a.printer.KeyValue(name, templates[name].BaseDir)
			}
			return nil
		},
	}
}

func newTemplateCreateCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:     "create <name> [source]",
		Aliases: []string{"new"},
		Short:   MsgTemplateCreateShort,
		Long:    MsgTemplateCreateLong,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.load()
			if err != nil {
				return err
			}
			source := ""
			if len(args) == 2 {
				source = args[1]
			}
			if _, err := a.repo.Create(args[0], source, true); err != nil {
				return err
			}
			if source != "" {
				a.printer.Info(MsgTemplateCreatedFrom, args[0], source)
			} else {
				a.printer.Info(MsgTemplateCreated, args[0])
			}
			return nil
		},
	}
}

func newTemplateImportCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <source>",
		Short: MsgTemplateImportShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.load()
			if err != nil {
				return err
			}
			tpl, err := a.repo.Import(args[0], args[1])
			if err != nil {
				return err
			}
			a.printer.Info(MsgTemplateImported, args[0], args[1], tpl.BaseDir)
			return nil
		},
	}
}

func newTemplateShowCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: MsgTemplateShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.load()
			if err != nil {
				return err
			}
			tpl, err := a.repo.Get(args[0])
			if err != nil {
				return err
			}
			count, err := tpl.PayloadFileCount(a.fs)
			if err != nil {
				return err
			}

			a.printer.Header(fmt.Sprintf(MsgTemplateTitle, args[0]))
			a.printer.KeyValue(MsgFieldPath, tpl.BaseDir)
			a.printer.KeyValue(MsgFieldFileCount, strconv.Itoa(count))
			printCommands(a, tpl.Info.Commands())
			return nil
		},
	}
}

func newTemplateRemoveCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: MsgTemplateRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.load()
			if err != nil {
				return err
			}
			tpl, err := a.repo.Get(args[0])
			if err != nil {
				return err
			}
			removed, err := a.repo.Remove(args[0], tpl)
			if err != nil {
				return err
			}
			if removed {
				a.printer.Info(MsgTemplateRemoved, args[0])
			} else {
				a.printer.Info(MsgTemplateKept, args[0])
			}
			return nil
		},
	}
}

func newTemplateCmdCmd(env *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmd",
		Short: MsgTemplateCmdShort,
	}

	cmd.AddCommand(newTemplateCmdAddCmd(env))
	cmd.AddCommand(newTemplateCmdRemoveCmd(env))
	cmd.AddCommand(newTemplateCmdListCmd(env))
	return cmd
}

func newTemplateCmdAddCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <command>",
		Short: MsgTemplateCmdAddShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.load()
			if err != nil {
				return err
			}
			tpl, err := a.repo.Get(args[0])
			if err != nil {
				return err
			}
			if err := a.repo.AddCommand(tpl, args[1]); err != nil {
				return err
			}
			a.printer.Info(MsgCommandAdded, tpl.Info.Len()-1, args[0])
			return nil
		},
	}
}

func newTemplateCmdRemoveCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name> <index>",
		Short: MsgTemplateCmdRmShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			a, err := env.load()
			if err != nil {
				return err
			}
			tpl, err := a.repo.Get(args[0])
			if err != nil {
				return err
			}
			commands := tpl.Info.Commands()
			removed, err := a.repo.RemoveCommandAt(args[0], tpl, index)
			if err != nil {
				return err
			}
			if removed {
				a.printer.Info(MsgCommandRemoved, commands[index], args[0])
			} else {
				a.printer.Info(MsgCommandKept, index, args[0])
			}
			return nil
		},
	}
}

func newTemplateCmdListCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list <name>",
		Short: MsgTemplateCmdListShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.load()
			if err != nil {
				return err
			}
			tpl, err := a.repo.Get(args[0])
			if err != nil {
				return err
			}
			printCommands(a, tpl.Info.Commands())
			return nil
		},
	}
}

func printCommands(a *app, commands []string) {
	if len(commands) == 0 {
		a.printer.Muted(MsgNoCommands)
		return
	}
	a.printer.Line(a.printer.Style("Key", MsgCommandsTitle))
	a.printer.List(commands)
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrInvalidIndex, s).
			WithDetail("index", s)
	}
	return index, nil
}
