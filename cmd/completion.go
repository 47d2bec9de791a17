package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// completionCmd provides shell completion scripts for popular shells.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To enable completion run the following or add to your shell profile:

Bash:
  source <(envsh completion bash)
  # or write to a file:
  envsh completion bash > /usr/local/etc/bash_completion.d/envsh

Zsh:
  envsh completion zsh > "${fpath[1]}/_envsh"
  autoload -U compinit && compinit

Fish:
  envsh completion fish | source
  # or:
  envsh completion fish > ~/.config/fish/completions/envsh.fish

PowerShell:
  envsh completion powershell | Out-String | Invoke-Expression
`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			return fmt.Errorf("unknown shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
