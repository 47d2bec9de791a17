package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"envsh/internal/config"
	"envsh/internal/shell"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start a shell with the resolved environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := resolveEnvironment(cmd)
		if err != nil {
			return err
		}
		sh := targetShell(cmd)

		// fish handles its own job control; without this the parent eats
		// the Ctrl-C meant for the child session.
		if sh.Kind == shell.Fish {
			signal.Ignore(os.Interrupt)
		}

		child := exec.Command(sh.Bin)
		child.Env = childEnv(vars)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		if err := child.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); !ok {
				return fmt.Errorf("couldn't start shell %q: %w", sh.Bin, err)
			}
		}

		printer(cmd).Bold("Exiting envsh session")
		return nil
	},
}

// childEnv augments the inherited environment with the resolved variables.
// Resolved values win over inherited ones because they come last.
func childEnv(vars config.VariableMap) []string {
	env := os.Environ()
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	return env
}

func init() {
	addConfigShellFlags(sessionCmd)
	rootCmd.AddCommand(sessionCmd)
}
