package config

import (
	"errors"
	"fmt"
)

// Sentinel errors with actionable guidance. Commands match on these with
// errors.Is; ConflictError is matched with errors.As.
var (
	// ErrNotFound indicates no config file could be located, explicitly or
	// by walking upward for a marker file.
	ErrNotFound = errors.New("couldn't find a YAML file to load")

	// ErrMalformed indicates the located file is not a flat string mapping.
	ErrMalformed = errors.New("config file isn't a valid YAML mapping of strings")

	// ErrUnrecognizedExtension indicates an explicit filename carries an
	// extension outside the recognized set (.yaml, .yml).
	ErrUnrecognizedExtension = errors.New("config file must have a .yaml or .yml extension")

	// ErrConfigDirNotFound indicates ~/.config/envsh doesn't exist.
	ErrConfigDirNotFound = errors.New("the default config path of $HOME/.config/envsh doesn't exist")
)

// ConflictError is returned when an extension-less explicit filename matches
// both recognized variants on disk. Both paths are reported so the caller
// can disambiguate by hand.
type ConflictError struct {
	PathA string
	PathB string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("found two conflicting config files, specify the file extension or consider renaming them:\n%s\n%s", e.PathA, e.PathB)
}
