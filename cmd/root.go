package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"envsh/internal/logger"
	"envsh/internal/output"

	"github.com/spf13/cobra"
)

// These are injected at build time via -ldflags. Defaults are for dev builds.
var (
	buildVersion = "dev"
	buildCommit  = ""
)

var rootCmd = &cobra.Command{
	Use:   "envsh",
	Short: "Directory-scoped environment loader",
	Long:  "envsh loads environment variables from a YAML config file, named explicitly or discovered by walking upward for a .envsh marker, and either spawns a shell with them or prints export statements for your current one.",
	Example: `  # Start a shell inside the nearest .envsh environment
  envsh session

  # Use a named config from ~/.config/envsh (extension optional)
  envsh session --config myproject

  # Load the environment into the current shell
  eval "$(envsh print)"          # bash, zsh, ...
  envsh print --shell fish | source

  # See the active marker file and available configs
  envsh list`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger.Init(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	// Show friendly suggestions for mistyped commands
	rootCmd.SuggestionsMinimumDistance = 1

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output JSON for scripting")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log config discovery steps to stderr")

	// Provide a version flag for packaging
	rootCmd.Version = buildVersion
	// Add an explicit `version` subcommand (e.g., `envsh version`)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("envsh %s\nCommit: %s\nGo: %s\nOS/Arch: %s/%s\n", rootCmd.Version, buildCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	})

	// Enrich version output with commit, runtime and platform
	rootCmd.SetVersionTemplate(fmt.Sprintf(`envsh %s
Commit: %s
Go: %s
OS/Arch: %s/%s
`, "{{.Version}}", buildCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH))

	// Provide an informative help output with examples and environment info
	rootCmd.SetHelpTemplate(`{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}{{end}}

Usage:
  {{.UseLine}}

{{if .HasAvailableSubCommands}}Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}  {{rpad .Name .NamePadding}} {{.Short}}
{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}
Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}
Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}
Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}
{{end}}{{end}}{{end}}{{if .Example}}
Examples:
{{.Example}}{{end}}

Environment:
  ENVSH_LEVEL   Session nesting depth, set for child processes
  ENVSH_SHELL   Preferred shell, overrides the settings file
  SHELL         Fallback shell when nothing else is configured

Configuration:
  Named configs and settings live in ~/.config/envsh (config.toml for settings).
  Implicit discovery walks parent directories for a file named .envsh.
`)

	// Ensure default help flag exists and set shorthand explicitly
	rootCmd.InitDefaultHelpFlag()
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		f.Shorthand = "h"
		f.Usage = "Show help for command"
	}
	// Ensure a top-level 'help' command is available (e.g., `envsh help`)
	rootCmd.InitDefaultHelpCmd()
}

// helper to access a shared output.Printer from commands
func printer(cmd *cobra.Command) output.Printer {
	jsonOut, _ := cmd.Root().PersistentFlags().GetBool("json")
	return output.Printer{JSON: jsonOut}
}

// addConfigShellFlags registers the flags shared by session and print.
func addConfigShellFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Name of a config file in ~/.config/envsh (extension optional)")
	cmd.Flags().StringP("shell", "s", "", "Shell to target instead of the configured one")
}

// shellFlag returns the trimmed --shell value.
func shellFlag(cmd *cobra.Command) string {
	v, _ := cmd.Flags().GetString("shell")
	return strings.TrimSpace(v)
}
