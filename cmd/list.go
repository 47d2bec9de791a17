package cmd

import (
	"os"

	"envsh/internal/config"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the active marker file and available configs",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := printer(cmd)

		dir, err := config.RequireUserDir()
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		marker, found := config.FindNearest(cwd)

		configs, err := config.Catalog(dir)
		if err != nil {
			return err
		}

		if p.JSONEnabled() {
			out := map[string]interface{}{"configs": configs}
			if found {
				out["marker"] = marker
			}
			return p.PrintJSON(out)
		}

		if found {
			p.Heading("Found in path:")
			p.Line(marker)
			p.Line("")
		}
		if len(configs) == 0 {
			p.Bold("No valid config files found in config folder.")
			return nil
		}
		p.Heading("Available config files:")
		for _, name := range configs {
			p.Line("- " + name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
