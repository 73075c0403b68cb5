package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// WriteJSONL writes the given lines to a file under dir and returns its path.
// The file lives for as long as dir does, so pass t.TempDir().
func WriteJSONL(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteGzipJSONL writes the given lines gzip-compressed, for exercising
// transparent decompression.
func WriteGzipJSONL(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create fixture %s: %v", name, err)
	}
	zw := gzip.NewWriter(f)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer for %s: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close fixture %s: %v", name, err)
	}
	return path
}

// ReadLines reads a file and returns its non-empty lines.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
