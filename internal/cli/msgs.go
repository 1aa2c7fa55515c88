package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort            = "A project scaffolding tool"
	MsgVersionShort         = "Print version information"
	MsgCompletionShort      = "Generate shell completion script"
	MsgGlobalsShort         = "Manage global substitution variables"
	MsgGlobalsGetShort      = "Print the value of a global variable"
	MsgGlobalsSetShort      = "Set a global variable"
	MsgGlobalsUnsetShort    = "Remove a global variable"
	MsgGlobalsListShort     = "List all global variables"
	MsgGlobalsInitShort     = "Interactively set the common global variables"
	MsgProjectShort         = "Create projects from templates"
	MsgProjectCreateShort   = "Create a new project directory from a template"
	MsgProjectCreateLong    = "Create a new project using the given template. The project is created in a directory named after the template unless a target directory is given. The target must not exist."
	MsgProjectInitShort     = "Fill an existing empty directory from a template"
	MsgTemplateShort        = "Manage project templates"
	MsgTemplateListShort    = "List all available project templates"
	MsgTemplateCreateShort  = "Create a new project template"
	MsgTemplateCreateLong   = "Create a new project template. If a source directory is given, all of its files are copied into the template. The template's command list starts empty."
	MsgTemplateImportShort  = "Import a template from a directory containing a .lppm_template file"
	MsgTemplateShowShort    = "Show information about a template"
	MsgTemplateRemoveShort  = "Remove a template"
	MsgTemplateCmdShort     = "Manage commands run after project creation"
	MsgTemplateCmdAddShort  = "Append a command to a template"
	MsgTemplateCmdRmShort   = "Remove the command at an index from a template"
	MsgTemplateCmdListShort = "List the commands of a template"

	// Status messages
	MsgGlobalsEmpty        = "globals file is empty"
	MsgGlobalSet           = "set global `%s`"
	MsgGlobalUnset         = "removed global `%s`"
	MsgProjectCreated      = "successfully created a project at `%s` from template `%s`"
	MsgNoTemplates         = "no project templates found"
	MsgTemplateCreated     = "successfully created new project template `%s`"
	MsgTemplateCreatedFrom = "successfully created new project template `%s` from `%s`"
	MsgTemplateImported    = "successfully imported project template `%s` from `%s` to `%s`"
	MsgTemplateRemoved     = "removed project template `%s`"
	MsgTemplateKept        = "kept project template `%s`"
	MsgTemplateTitle       = "project template `%s`"
	MsgNoCommands          = "template does not contain commands to be run on project creation"
	MsgCommandsTitle       = "commands to be run on project creation:"
	MsgCommandAdded        = "added command #%d to template `%s`"
	MsgCommandRemoved      = "removed command `%s` from template `%s`"
	MsgCommandKept         = "kept command #%d of template `%s`"

	// Field labels
	MsgFieldPath      = "path"
	MsgFieldFileCount = "file count"

	// Error messages
	MsgErrInvalidIndex = "`%s` is not a valid integral index"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagYes          = "Answer yes to every confirmation"
	MsgFlagConfigDir    = "Config directory (default $LPPM_CONFIG_DIR or $XDG_CONFIG_HOME/lppm)"
	MsgFlagTemplatesDir = "Templates directory (default <config-dir>/templates)"
	MsgFlagColor        = "Colorize output: auto, always or never"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimRight(msgCompletionLongRaw, "\n")

	//go:embed msgs/project-example.txt
	msgProjectExampleRaw string
	MsgProjectExample    = strings.TrimRight(msgProjectExampleRaw, "\n")

	//go:embed msgs/template-example.txt
	msgTemplateExampleRaw string
	MsgTemplateExample    = strings.TrimRight(msgTemplateExampleRaw, "\n")
)
