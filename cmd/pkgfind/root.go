// ABOUTME: Root command, global flags, and per-invocation wiring of config, logging, and the app
// ABOUTME: env carries stdio and overridable collaborators so commands run under test

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mauromedda/pkgfind/internal/app"
	"github.com/mauromedda/pkgfind/internal/browser"
	"github.com/mauromedda/pkgfind/internal/config"
	plog "github.com/mauromedda/pkgfind/internal/log"
	"github.com/mauromedda/pkgfind/internal/pkgmanager"
	"github.com/mauromedda/pkgfind/internal/ui"
	"github.com/mauromedda/pkgfind/internal/workspace"
)

// env is what a command needs from the process. Nil collaborators get
// the real implementations.
type env struct {
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer

	prompter       ui.Prompter
	packageManager app.PackageManager
	opener         app.Opener
}

func defaultEnv() *env {
	return &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose    bool
	configFile string
	dir        string
}

func newRootCmd(e *env) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "pkgfind",
		Short: "Search the npm registry and install packages into a workspace",
		Long: `pkgfind searches the package registry through the package-manager CLI,
lets you pick a result, and either opens its registry page or installs it
into the package.json you choose.

Examples:
  pkgfind search left pad         Pick a result and open its registry page
  pkgfind search --print react    Print matching packages
  pkgfind install-dev vitest      Install as a dev dependency
  pkgfind config                  Show the effective configuration`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&g.configFile, "config", "", "config file (default is ~/.pkgfind/config.yaml and .pkgfind/config.yaml)")
	root.PersistentFlags().StringVarP(&g.dir, "dir", "C", "", "workspace directory (default is the current directory)")

	root.AddCommand(
		newSearchCmd(e, g),
		newInstallCmd(e, g, pkgmanager.InstallDefault),
		newInstallCmd(e, g, pkgmanager.InstallSave),
		newInstallCmd(e, g, pkgmanager.InstallSaveDev),
		newConfigCmd(e, g),
	)
	return root
}

// session is the wiring for one command invocation.
type session struct {
	cfg     *config.Config
	app     *app.App
	channel *plog.Channel
}

func (s *session) Close() error {
	return s.channel.Close()
}

// workspaceRoot returns the absolute --dir, defaulting to the working directory.
func (g *globalFlags) workspaceRoot() (string, error) {
	dir := g.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Abs(dir)
}

func (g *globalFlags) loadConfig() (*config.Config, string, error) {
	root, err := g.workspaceRoot()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(config.LoadOptions{ConfigFile: g.configFile, ProjectRoot: root})
	if err != nil {
		return nil, "", err
	}
	if g.verbose || cfg.Verbose {
		plog.SetLevel(plog.LevelDebug)
	}
	return cfg, root, nil
}

func newSession(e *env, g *globalFlags) (*session, error) {
	cfg, root, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	var ch *plog.Channel
	if cfg.LogFile != "" {
		if ch, err = plog.OpenChannel("pkgfind", cfg.LogFile); err != nil {
			plog.Warn("output channel disabled: %v", err)
		}
	}

	ws := workspace.New(root)
	ws.Include = cfg.Manifest.Include
	ws.Exclude = cfg.Manifest.Exclude

	a := &app.App{
		PackageManager: e.packageManager,
		Workspace:      ws,
		Prompter:       e.prompter,
		Opener:         e.opener,
		Channel:        ch,
		RegistryURL:    cfg.RegistryURL,
		Root:           root,
		Out:            e.stdout,
	}
	if a.PackageManager == nil {
		a.PackageManager = pkgmanager.NewClient(cfg.PackageManager)
	}
	if a.Prompter == nil {
		a.Prompter = ui.NewPrompter(e.stdin, e.stderr)
	}
	if a.Opener == nil {
		a.Opener = browser.Default
	}

	plog.Debug("workspace %s, package manager %s", root, cfg.PackageManager)
	return &session{cfg: cfg, app: a, channel: ch}, nil
}

// runSession opens a session, runs fn, and treats cancellation as success.
func runSession(ctx context.Context, e *env, g *globalFlags, fn func(context.Context, *session) error) error {
	s, err := newSession(e, g)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			plog.Debug("closing output channel: %v", cerr)
		}
	}()

	if err := fn(ctx, s); err != nil {
		if errors.Is(err, app.ErrCancelled) {
			plog.Debug("cancelled")
			return nil
		}
		return err
	}
	return nil
}
