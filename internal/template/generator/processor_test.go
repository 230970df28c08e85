package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	base := Variables{VarProjectName: "x", VarDBProvider: DBProviderAuto}

	tests := []struct {
		name    string
		content string
		vars    Variables
		want    string
	}{
		{
			name:    "single placeholder",
			content: "Hello {{name}}!",
			vars:    Variables{"name": "World"},
			want:    "Hello World!",
		},
		{
			name:    "missing key is preserved",
			content: "Hi {{missing}}",
			vars:    base,
			want:    "Hi {{missing}}",
		},
		{
			name:    "all occurrences replaced",
			content: "{{n}} and {{n}}",
			vars:    base.With("n", "A"),
			want:    "A and A",
		},
		{
			name:    "multiple keys",
			content: `{"name": "{{projectName}}", "db": "{{dbProvider}}"}`,
			vars:    Variables{VarProjectName: "demo", VarDBProvider: DBProviderSQLite},
			want:    `{"name": "demo", "db": "sqlite"}`,
		},
		{
			name:    "value containing a marker is not rescanned",
			content: "{{a}} {{b}}",
			vars:    Variables{"a": "{{b}}", "b": "B"},
			want:    "{{b}} B",
		},
		{
			name:    "empty value is still substituted",
			content: "[{{empty}}]",
			vars:    Variables{"empty": ""},
			want:    "[]",
		},
		{
			name:    "no escaping: literal marker text is substituted",
			content: "use {{projectName}} literally",
			vars:    base,
			want:    "use x literally",
		},
		{
			name:    "extra braces around marker",
			content: "{{{name}}}",
			vars:    Variables{"name": "v"},
			want:    "{v}",
		},
		{
			name:    "unterminated marker",
			content: "{{name",
			vars:    Variables{"name": "v"},
			want:    "{{name",
		},
		{
			name:    "nil variables",
			content: "{{projectName}}",
			vars:    nil,
			want:    "{{projectName}}",
		},
		{
			name:    "empty content",
			content: "",
			vars:    base,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.content, tt.vars))
		})
	}
}

func TestSubstitute_Idempotent(t *testing.T) {
	vars := Variables{"name": "World"}
	once := Substitute("Hello {{name}}!", vars)
	assert.Equal(t, once, Substitute(once, vars))
}

func TestIsTextFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"src/server/index.ts", true},
		{"src/app/App.tsx", true},
		{"package.json", true},
		{"README.md", true},
		{"CLAUDE.md", true},
		{".gitignore", true},
		{"bunfig.toml", true},
		{"docker-compose.yml", true},
		{"styles/app.css", true},
		{"public/index.html", true},
		{"prod.env", true},
		{".env", true},
		{".env.example", false},
		{"public/favicon.ico", false},
		{"logo.png", false},
		{"README.MD", false},
		{"Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTextFile(tt.path))
		})
	}
}

func TestTextExtensions_ReturnsCopy(t *testing.T) {
	exts := TextExtensions()
	exts[0] = ".bogus"
	assert.Equal(t, ".ts", TextExtensions()[0])
}
