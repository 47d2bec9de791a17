package config

import (
	"os"
	"path/filepath"

	"envsh/internal/logger"
)

// MarkerName is the fixed, unextended filename that implicit discovery
// looks for in each ancestor directory.
const MarkerName = ".envsh"

// Locate resolves an explicit config reference: filename joined onto dir.
//
// A filename that already carries a recognized extension is accepted as-is;
// existence is deferred to Parse, which surfaces the filesystem error. Any
// other extension is rejected. With no extension, both variants are probed:
// exactly one present wins, neither is ErrNotFound, and both is a
// ConflictError carrying the two candidate paths.
func Locate(dir, filename string) (string, error) {
	path := filepath.Join(dir, filename)

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return path, nil
	case "":
	default:
		return "", ErrUnrecognizedExtension
	}

	yaml := path + ".yaml"
	yml := path + ".yml"
	yamlExists := exists(yaml)
	ymlExists := exists(yml)
	logger.L.Debug().Str("yaml", yaml).Bool("exists", yamlExists).Msg("probed candidate")
	logger.L.Debug().Str("yml", yml).Bool("exists", ymlExists).Msg("probed candidate")

	switch {
	case yamlExists && ymlExists:
		return "", &ConflictError{PathA: yaml, PathB: yml}
	case yamlExists:
		return yaml, nil
	case ymlExists:
		return yml, nil
	default:
		return "", ErrNotFound
	}
}

// FindNearest walks upward from startDir looking for the marker file.
// The closest ancestor wins. The walk is iterative, visits each directory
// once, and stops at the filesystem root. The second return is false when
// no marker exists anywhere on the path to the root.
func FindNearest(startDir string) (string, bool) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, MarkerName)
		if exists(candidate) {
			logger.L.Debug().Str("path", candidate).Msg("marker found")
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
