package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// LocalPath returns the path of the local override of a config file,
// "config.json5" becomes "config.local.json5".
func LocalPath(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

func readFile[T any](path string) (T, bool, error) {
	var out T
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if len(strings.TrimSpace(string(contents))) == 0 {
		return out, false, nil
	}
	err = json5.Unmarshal(contents, &out)
	if err != nil {
		return out, false, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, true, nil
}

// ReadConfig reads a json5 configuration file, `name` should come with a
// file extension. The following are merged, where a higher number is more
// prioritized, fields left empty keep the value of a lower layer.
// 1. defaults
// 2. <name>.<ext>
// 3. <name>.local.<ext>
// A missing file is not an error.
func ReadConfig[T any](name string, defaults T) (T, error) {
	out := defaults

	for _, path := range []string{name, LocalPath(name)} {
		layer, found, err := readFile[T](path)
		if err != nil {
			return out, err
		}
		if !found {
			continue
		}
		err = mergo.Merge(&out, layer, mergo.WithOverride)
		if err != nil {
			return out, fmt.Errorf("merge %s: %w", path, err)
		}
		slog.Debug("merged config file", "path", path)
	}

	return out, nil
}
