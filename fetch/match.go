package fetch

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Matcher matches object names against a shell-style glob: '*' matches
// any run of characters and '?' any single character. Unlike path
// matching, '*' crosses '/' boundaries, so "audit/*.json" also matches
// "audit/2019/07/23.json". An empty glob matches everything.
type Matcher struct {
	glob string
	re   *regexp.Regexp
}

// NewMatcher compiles a glob.
func NewMatcher(glob string) *Matcher {
	if glob == "" {
		return &Matcher{glob: glob}
	}
	pattern := regexp.QuoteMeta(glob)
	pattern = strings.ReplaceAll(pattern, `\*`, `.*`)
	pattern = strings.ReplaceAll(pattern, `\?`, `.`)
	return &Matcher{glob: glob, re: regexp.MustCompile(`^` + pattern + `$`)}
}

// Match reports whether the object name matches.
func (m *Matcher) Match(name string) bool {
	if m.re == nil {
		return true
	}
	return m.re.MatchString(name)
}

func (m *Matcher) String() string {
	if m.glob == "" {
		return "*"
	}
	return m.glob
}

// MirrorPath maps an object name to its place under destDir, keeping the
// bucket's directory layout. Colons become dashes; exports timestamp
// their object names and colons travel poorly across filesystems.
func MirrorPath(destDir, name string) string {
	sanitized := strings.ReplaceAll(name, ":", "-")
	return filepath.Join(destDir, filepath.FromSlash(sanitized))
}
