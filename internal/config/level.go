package config

import (
	"os"
	"strconv"
)

// LevelKey is the reserved variable name tracking how many envsh sessions
// are nested inside each other. Child processes see it as a string-encoded
// positive integer.
const LevelKey = "ENVSH_LEVEL"

// AnnotateLevel sets LevelKey in vars to one more than the ambient level.
// The ambient level comes from the process's inherited environment, not
// from vars; a missing or non-numeric ambient value counts as zero. Any
// value for the key parsed out of the config file is overwritten.
func AnnotateLevel(vars VariableMap) {
	level := 1
	if ambient, ok := os.LookupEnv(LevelKey); ok {
		if n, err := strconv.Atoi(ambient); err == nil && n >= 0 {
			level = n + 1
		}
	}
	vars[LevelKey] = strconv.Itoa(level)
}
