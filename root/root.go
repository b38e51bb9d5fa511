// Package root locates configuration files.
package root

import (
	"os"
	"path/filepath"
)

// A Root is the directory relative config paths are resolved against.
type Root string

// New creates a root defaulting to defroot, overridden by the values of any
// of the given envVars, where the first-non-empty var wins. An empty result
// falls back to the working directory.
func New(defroot string, envVars ...string) Root {
	root := defroot
	for _, env := range envVars {
		if value := os.Getenv(env); value != "" {
			root = value
			break
		}
	}
	if root == "" {
		var err error
		if root, err = os.Getwd(); err != nil {
			panic(err)
		}
	}
	return Root(root)
}

// Path converts file to a path under r. Absolute paths are returned as is.
func (r Root) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(string(r), file)
}

// Bytes reads the file at path in r as a []byte
func (r Root) Bytes(path string) ([]byte, error) {
	return os.ReadFile(r.Path(path))
}
