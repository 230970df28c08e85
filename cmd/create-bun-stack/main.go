package main

import (
	"github.com/tacogips/create-bun-stack/internal/cli"
)

// Version information is embedded by internal/build and can be overridden
// with -ldflags "-X github.com/tacogips/create-bun-stack/internal/build.version=...".
func main() {
	// Execute the root command
	cli.Execute()
}
