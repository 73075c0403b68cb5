package commands

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/logbox/errors"
)

// expandInputs turns -f arguments into a concrete ordered file list.
// Glob patterns expand sorted; directories need --recurse and contribute
// every export-looking file under them; plain paths pass through as-is.
func expandInputs(patterns []string, recurse bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	resolve := func(path string) error {
		info, err := os.Stat(path)
		if err != nil {
			return errors.Wrapf(err, "checking input %s", path)
		}
		if !info.IsDir() {
			add(path)
			return nil
		}
		if !recurse {
			return errors.WithHint(
				errors.Newf("%s is a directory", path),
				"pass --recurse to search subdirectories")
		}
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isExportFile(p) {
				add(p)
			}
			return nil
		})
		if walkErr != nil {
			return errors.Wrapf(walkErr, "searching %s", path)
		}
		return nil
	}

	for _, pattern := range patterns {
		if pattern == "-" {
			add("-")
			continue
		}
		if strings.ContainsAny(pattern, "*?[") {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, errors.Wrapf(err, "bad pattern %q", pattern)
			}
			if len(matches) == 0 {
				return nil, errors.Newf("pattern %q matched nothing", pattern)
			}
			// Glob results come back sorted
			for _, match := range matches {
				if err := resolve(match); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := resolve(pattern); err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, errors.New("no input files found")
	}
	return files, nil
}

// isExportFile reports whether the name looks like a log export: .json or
// .jsonl, optionally compressed.
func isExportFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, suffix := range []string{".gz", ".zst", ".zstd"} {
		name = strings.TrimSuffix(name, suffix)
	}
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".jsonl")
}
