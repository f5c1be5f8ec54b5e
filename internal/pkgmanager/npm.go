// ABOUTME: NPM client builds search/install command lines and runs them through a Runner
// ABOUTME: Search output is handed to the search package for parsing and reconciliation

package pkgmanager

import (
	"context"
	"fmt"
	"strings"

	plog "github.com/mauromedda/pkgfind/internal/log"
	"github.com/mauromedda/pkgfind/internal/search"
)

// DefaultCommand is the package-manager executable used when none is configured.
const DefaultCommand = "npm"

// Client talks to an npm-compatible package-manager CLI.
type Client struct {
	Command string // executable, e.g. "npm"
	Runner  Runner
}

// NewClient returns a Client for command using a ShellRunner.
func NewClient(command string) *Client {
	if command == "" {
		command = DefaultCommand
	}
	return &Client{Command: command, Runner: &ShellRunner{}}
}

// SearchCommand returns `<cmd> search --long <terms...>`. Each whitespace
// separated term of query is quoted as its own argument.
func (c *Client) SearchCommand(query string) (string, error) {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return "", fmt.Errorf("empty search query")
	}
	args, err := quoteArgs(terms)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s search --long %s", c.Command, args), nil
}

// InstallCommand returns `<cmd> install [flags] <name>`.
func (c *Client) InstallCommand(mode InstallMode, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty package name")
	}
	pkg, err := quoteArgs([]string{name})
	if err != nil {
		return "", err
	}
	parts := []string{c.Command, "install"}
	if flags, ok := mode.Flags(); ok {
		parts = append(parts, flags)
	}
	parts = append(parts, pkg)
	return strings.Join(parts, " "), nil
}

// SearchOutput runs the search command and returns its raw output.
func (c *Client) SearchOutput(ctx context.Context, query string) (string, error) {
	cmd, err := c.SearchCommand(query)
	if err != nil {
		return "", err
	}
	out, err := c.Runner.Run(ctx, cmd, "")
	if err != nil {
		return "", fmt.Errorf("npm search %q: %w", query, err)
	}
	return out, nil
}

// Search runs the search command and parses its output. The records come
// back in the order they appeared in the output.
func (c *Client) Search(ctx context.Context, query string) ([]search.Package, error) {
	out, err := c.SearchOutput(ctx, query)
	if err != nil {
		return nil, err
	}
	res := search.Parse(out)
	if res.Dropped > 0 {
		plog.Debug("npm search %q: dropped %d continuation lines with no record", query, res.Dropped)
	}
	plog.Debug("npm search %q: %d packages, %d continuation lines merged", query, len(res.Packages), res.Merged)
	return search.Chronological(res.Packages), nil
}

// Install runs the install command for name with dir as the working directory.
// It returns the command output.
func (c *Client) Install(ctx context.Context, mode InstallMode, name, dir string) (string, error) {
	cmd, err := c.InstallCommand(mode, name)
	if err != nil {
		return "", err
	}
	out, err := c.Runner.Run(ctx, cmd, dir)
	if err != nil {
		return "", fmt.Errorf("npm install %s: %w", name, err)
	}
	return out, nil
}
