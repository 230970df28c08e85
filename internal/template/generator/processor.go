package generator

import (
	"strings"
)

// textExtensions lists the suffixes of files that go through placeholder
// substitution. Everything else is copied byte-for-byte.
var textExtensions = []string{
	".ts",
	".tsx",
	".js",
	".jsx",
	".json",
	".md",
	".txt",
	".css",
	".html",
	".yml",
	".yaml",
	".toml",
	".env",
	".gitignore",
}

// TextExtensions returns a copy of the text extension allow-list.
func TextExtensions() []string {
	out := make([]string, len(textExtensions))
	copy(out, textExtensions)
	return out
}

// IsTextFile reports whether path ends with one of the text extensions.
// The check is a plain case-sensitive suffix match on the whole path, so
// ".env.example" is binary while "app.env" is text.
func IsTextFile(path string) bool {
	for _, ext := range textExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Marker returns the placeholder text for a variable name.
func Marker(name string) string {
	return "{{" + name + "}}"
}

// Substitute replaces every {{key}} marker in content with the value of key.
//
// All keys are replaced in one left-to-right pass over the original text, so a
// value that happens to contain another marker is emitted literally and never
// rescanned. Markers naming keys that are not in vars are kept verbatim.
func Substitute(content string, vars Variables) string {
	if len(vars) == 0 || !strings.Contains(content, "{{") {
		return content
	}

	oldnew := make([]string, 0, len(vars)*2)
	for _, key := range vars.Keys() {
		oldnew = append(oldnew, Marker(key), vars[key])
	}

	return strings.NewReplacer(oldnew...).Replace(content)
}
