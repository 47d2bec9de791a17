package cmd

import (
	"os"
	"strings"

	"envsh/internal/config"
	"envsh/internal/shell"

	"github.com/spf13/cobra"
)

// resolveEnvironment builds the annotated variable map for the invocation.
// An explicit --config name resolves against the user config directory,
// which must exist; otherwise discovery starts at the working directory.
func resolveEnvironment(cmd *cobra.Command) (config.VariableMap, error) {
	explicit, _ := cmd.Flags().GetString("config")
	explicit = strings.TrimSpace(explicit)

	var dir string
	if explicit != "" {
		d, err := config.RequireUserDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Resolve(dir, explicit, cwd)
}

// targetShell resolves the shell for session and print. Settings load
// failures fall back to flag/$SHELL detection rather than aborting.
func targetShell(cmd *cobra.Command) shell.Shell {
	settings, err := config.LoadSettings()
	if err != nil {
		settings = nil
	}
	return shell.Detect(shellFlag(cmd), settings)
}
