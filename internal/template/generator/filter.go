package generator

import (
	"strings"

	"github.com/tacogips/create-bun-stack/internal/debug"
)

// ExcludePatterns is an ordered set of substrings. A directory entry is
// excluded when its name contains any of them.
type ExcludePatterns []string

// defaultExcludePatterns are the entries never copied into a generated
// project. "*.log" is matched literally, not as a glob.
var defaultExcludePatterns = ExcludePatterns{
	"node_modules",
	"bun.lock",
	".db",
	"dist",
	"build",
	".env.local",
	".DS_Store",
	"*.log",
}

// GetExcludePatterns returns the fixed exclude list used when materializing a
// template. It must never match ".gitignore" or "CLAUDE.md".
func GetExcludePatterns() ExcludePatterns {
	out := make(ExcludePatterns, len(defaultExcludePatterns))
	copy(out, defaultExcludePatterns)
	return out
}

// Matches reports whether name contains any pattern as a substring.
func (p ExcludePatterns) Matches(name string) bool {
	_, ok := p.match(name)
	return ok
}

func (p ExcludePatterns) match(name string) (string, bool) {
	for _, pattern := range p {
		if strings.Contains(name, pattern) {
			return pattern, true
		}
	}
	return "", false
}

// ShouldExclude is Matches with debug logging of the pattern that fired.
func ShouldExclude(name string, patterns ExcludePatterns) bool {
	pattern, ok := patterns.match(name)
	if ok {
		debug.Debug("[generator] Excluding entry: %s (matched pattern: %s)", name, pattern)
	}
	return ok
}
