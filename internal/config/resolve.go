package config

import "envsh/internal/logger"

// Resolve produces the complete annotated variable mapping for one
// invocation. An explicit filename resolves against dir (the user config
// directory); otherwise the nearest marker file above startDir is used.
// Failures are terminal: no partial or fallback mapping is ever returned.
func Resolve(dir, explicit, startDir string) (VariableMap, error) {
	var path string
	if explicit != "" {
		p, err := Locate(dir, explicit)
		if err != nil {
			return nil, err
		}
		path = p
	} else {
		p, ok := FindNearest(startDir)
		if !ok {
			return nil, ErrNotFound
		}
		path = p
	}
	logger.L.Debug().Str("path", path).Msg("resolved config file")

	vars, err := Parse(path)
	if err != nil {
		return nil, err
	}
	AnnotateLevel(vars)
	return vars, nil
}
