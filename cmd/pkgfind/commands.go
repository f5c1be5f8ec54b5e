// ABOUTME: search, install, install-save, install-dev, and config subcommands
// ABOUTME: Each command builds a session and delegates to the app flows

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mauromedda/pkgfind/internal/pkgmanager"
	"github.com/mauromedda/pkgfind/internal/ui"
)

func newSearchCmd(e *env, g *globalFlags) *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the registry and open a package page",
		Long: `Search the registry, pick a result, and open its registry page in the browser.
Without a query you are prompted for one. With --print the results are
rendered to stdout instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), e, g, func(ctx context.Context, s *session) error {
				if !printOnly {
					return s.app.Browse(ctx, args)
				}
				q, pkgs, err := s.app.Find(ctx, args)
				if err != nil {
					return err
				}
				fmt.Fprint(e.stdout, cardRenderer(e, s).Render(q, pkgs))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print results instead of picking one")
	return cmd
}

// cardRenderer styles for the terminal when stdout is one and plain otherwise.
func cardRenderer(e *env, s *session) ui.CardRenderer {
	r := ui.CardRenderer{Style: "notty", Width: 80, RegistryURL: s.cfg.RegistryURL}
	if f, ok := e.stdout.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		r.Style = ""
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			r.Width = w
		}
	}
	return r
}

var installUsage = map[pkgmanager.InstallMode]struct{ use, short string }{
	pkgmanager.InstallDefault: {"install", "Search and install a package"},
	pkgmanager.InstallSave:    {"install-save", "Search and install a package as a dependency (-S)"},
	pkgmanager.InstallSaveDev: {"install-dev", "Search and install a package as a dev dependency (-D)"},
}

func newInstallCmd(e *env, g *globalFlags, mode pkgmanager.InstallMode) *cobra.Command {
	u := installUsage[mode]
	return &cobra.Command{
		Use:   u.use + " [query...]",
		Short: u.short,
		Long: u.short + `.

The package is installed next to the workspace's package.json. When the
workspace has several, you choose one; node_modules is never searched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), e, g, func(ctx context.Context, s *session) error {
				return s.app.Install(ctx, mode, args)
			})
		},
	}
}

func newConfigCmd(e *env, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := g.loadConfig()
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(e.stdout, out)
			return nil
		},
	}
}
