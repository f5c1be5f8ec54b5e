// ABOUTME: CLI entry point for pkgfind
// ABOUTME: Runs the cobra command tree through fang and maps errors to exit codes

package main

import (
	"context"
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea so
	// lipgloss never sends OSC background queries from an init().
	_ "github.com/mauromedda/pkgfind/internal/termfix"

	"github.com/charmbracelet/fang"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func versionString() string {
	if version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	root := newRootCmd(defaultEnv())
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
