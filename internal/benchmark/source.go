package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source locates and loads benchmark result files from a directory.
type Source struct {
	Dir string
}

// Files returns the paths of the .json files in the directory, sorted
// lexicographically by name. A missing directory surfaces as the underlying
// os error so the caller can distinguish it from an empty one.
func (s Source) Files() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(s.Dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Load reads and parses a single result file. Errors are returned to the
// caller, which logs and skips the file; one bad file never aborts a run.
func (s Source) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return &f, nil
}
