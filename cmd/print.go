package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print export statements for the resolved environment",
	Long:  "Print one export statement per variable in the target shell's syntax, suitable for eval in bash-like shells or piping to source in fish.",
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := resolveEnvironment(cmd)
		if err != nil {
			return err
		}
		return targetShell(cmd).Export(os.Stdout, vars)
	},
}

func init() {
	addConfigShellFlags(printCmd)
	rootCmd.AddCommand(printCmd)
}
