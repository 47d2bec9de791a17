package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// VariableMap is the flat variable-name to value mapping parsed from a
// config file. Built fresh per invocation, annotated once with the nesting
// level, and read-only after that.
type VariableMap map[string]string

// Parse reads path fully and decodes it as a flat YAML mapping of string
// scalars. Parsing is all-or-nothing: an I/O failure or a structural
// violation (nested values, non-string scalars, bad encoding) returns an
// error and no partial mapping.
func Parse(path string) (VariableMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	vars := VariableMap{}
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return vars, nil
}
