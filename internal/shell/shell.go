// Package shell models the two shell families envsh can target: fish and
// everything bash-like. Only the command name and the export-statement
// syntax ever differ.
package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"envsh/internal/config"
)

// Kind is the shell family.
type Kind int

const (
	BashLike Kind = iota
	Fish
)

// Shell is a resolved target shell: its family plus the binary to invoke.
type Shell struct {
	Kind Kind
	Bin  string
}

// Detect picks the target shell. Precedence: the --shell flag value, then
// the settings file / ENVSH_SHELL, then $SHELL, then plain bash. Only the
// basename matters for family detection, so full paths are accepted.
func Detect(flag string, settings *config.Settings) Shell {
	bin := flag
	if bin == "" && settings != nil {
		bin = settings.Shell
	}
	if bin == "" {
		bin = os.Getenv("SHELL")
	}
	if bin == "" {
		bin = "bash"
	}

	name := filepath.Base(bin)
	if name == "fish" {
		return Shell{Kind: Fish, Bin: bin}
	}
	return Shell{Kind: BashLike, Bin: bin}
}

// Export writes one assignment statement per variable to w, in the target
// shell's syntax, sorted by key for stable output.
func (s Shell) Export(w io.Writer, vars config.VariableMap) error {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := s.quote(vars[k])
		var err error
		if s.Kind == Fish {
			_, err = fmt.Fprintf(w, "set -gx %s \"%s\"; ", k, v)
		} else {
			_, err = fmt.Fprintf(w, "export %s=\"%s\"; ", k, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// quote escapes a value for inclusion inside double quotes. Inside double
// quotes fish only treats backslash, quote and dollar specially; bash-like
// shells also expand backticks.
func (s Shell) quote(v string) string {
	if s.Kind == Fish {
		return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`).Replace(v)
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`").Replace(v)
}
