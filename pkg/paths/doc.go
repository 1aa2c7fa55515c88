// Package paths provides centralized path handling for lppm.
//
// All on-disk locations hang off a single config root:
//
//	<config-root>/
//	├── config.toml               # tool configuration (optional)
//	├── globals.toml              # global substitution variables
//	└── templates/
//	    └── <template-name>/
//	        ├── .lppm_template    # template metadata
//	        └── ...               # payload files
//
// The config root is $LPPM_CONFIG_DIR when set, otherwise
// $XDG_CONFIG_HOME/lppm as resolved by github.com/adrg/xdg.
package paths
