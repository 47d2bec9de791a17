package config

import (
	"os"
	"path/filepath"
	"sort"
)

// Catalog lists the config files sitting directly in dir: regular entries
// whose extension is recognized, bare names only, sorted ascending. This is
// a best-effort listing, not a parse: no file content is read and
// unreadable entries are skipped. No matches yields an empty slice.
func Catalog(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
