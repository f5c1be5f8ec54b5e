// ABOUTME: Composes search, registry-page open, and install flows from their collaborators
// ABOUTME: Maps process failures to logged-only, surfaced, or silent outcomes

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	plog "github.com/mauromedda/pkgfind/internal/log"
	"github.com/mauromedda/pkgfind/internal/pkgmanager"
	"github.com/mauromedda/pkgfind/internal/search"
	"github.com/mauromedda/pkgfind/internal/target"
	"github.com/mauromedda/pkgfind/internal/ui"
	"github.com/mauromedda/pkgfind/internal/workspace"
)

// ErrCancelled means the user dismissed a prompt. The CLI exits quietly on it.
var ErrCancelled = target.ErrCancelled

// PackageManager searches the registry and installs packages.
type PackageManager interface {
	Search(ctx context.Context, query string) ([]search.Package, error)
	Install(ctx context.Context, mode pkgmanager.InstallMode, name, dir string) (string, error)
}

// Workspace lists the manifests that could receive an install.
type Workspace interface {
	Candidates(ctx context.Context) ([]workspace.Candidate, error)
}

// Opener opens a URL outside the terminal.
type Opener interface {
	Open(url string) error
}

// InstallError reports a failed install command.
type InstallError struct {
	Package string
	Dir     string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing %s in %s: %v", e.Package, e.Dir, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// App wires the collaborators together. Channel may be nil.
type App struct {
	PackageManager PackageManager
	Workspace      Workspace
	Prompter       ui.Prompter
	Opener         Opener
	Channel        *plog.Channel

	RegistryURL string
	Root        string    // workspace root, shortens manifest paths in the target list
	Out         io.Writer // status messages
}

// Query joins args into a search query, prompting when args is empty.
// The query is NFC-normalized.
func (a *App) Query(ctx context.Context, args []string) (string, error) {
	q := strings.TrimSpace(strings.Join(args, " "))
	if q == "" {
		v, ok, err := a.Prompter.Text(ctx, "Search terms", "package name or keywords")
		if err != nil {
			return "", err
		}
		if !ok || strings.TrimSpace(v) == "" {
			return "", ErrCancelled
		}
		q = strings.TrimSpace(v)
	}
	return norm.NFC.String(q), nil
}

// Search runs query. Failures are written to the channel and yield no results.
func (a *App) Search(ctx context.Context, query string) []search.Package {
	pkgs, err := a.PackageManager.Search(ctx, query)
	if err != nil {
		a.logFailure("search", err)
		return nil
	}
	a.Channel.Appendf("search %q: %d packages", query, len(pkgs))
	return pkgs
}

// Find resolves the query from args and searches for it.
func (a *App) Find(ctx context.Context, args []string) (string, []search.Package, error) {
	q, err := a.Query(ctx, args)
	if err != nil {
		return "", nil, err
	}
	return q, a.Search(ctx, q), nil
}

// Pick asks the user to choose one of pkgs.
func (a *App) Pick(ctx context.Context, query string, pkgs []search.Package) (search.Package, error) {
	if len(pkgs) == 0 {
		fmt.Fprintf(a.Out, "No packages found for %q\n", query)
		return search.Package{}, ErrCancelled
	}
	item, ok, err := a.Prompter.Select(ctx, fmt.Sprintf("Packages matching %q", query), ui.PackageItems(pkgs))
	if err != nil {
		return search.Package{}, err
	}
	if !ok {
		return search.Package{}, ErrCancelled
	}
	return item.Value.(search.Package), nil
}

// Browse searches, lets the user pick a result, and opens its registry page.
func (a *App) Browse(ctx context.Context, args []string) error {
	q, pkgs, err := a.Find(ctx, args)
	if err != nil {
		return err
	}
	p, err := a.Pick(ctx, q, pkgs)
	if err != nil {
		return err
	}

	u := p.URL(a.RegistryURL)
	a.Channel.Appendf("open %s", u)
	if err := a.Opener.Open(u); err != nil {
		a.Channel.Appendf("open %s failed: %v", u, err)
		return err
	}
	return nil
}

// Install searches, lets the user pick a result, resolves the manifest that
// receives it, and runs the install there.
func (a *App) Install(ctx context.Context, mode pkgmanager.InstallMode, args []string) error {
	q, pkgs, err := a.Find(ctx, args)
	if err != nil {
		return err
	}
	p, err := a.Pick(ctx, q, pkgs)
	if err != nil {
		return err
	}

	c, err := a.Target(ctx)
	if err != nil {
		return err
	}
	if c.Manifest != nil {
		if m, ok := c.Manifest.Dependency(p.Name); ok {
			section := "dependencies"
			if m == pkgmanager.InstallSaveDev {
				section = "devDependencies"
			}
			plog.Info("%s is already listed in %s of %s", p.Name, section, c.Path)
		}
	}

	a.Channel.Appendf("install %s (%s) in %s", p.Name, mode, c.Dir)
	out, err := a.PackageManager.Install(ctx, mode, p.Name, c.Dir)
	if err != nil {
		a.logFailure("install", err)
		return &InstallError{Package: p.Name, Dir: c.Dir, Err: err}
	}
	if out = strings.TrimRight(out, "\n"); out != "" {
		a.Channel.Append(out)
	}

	msg := fmt.Sprintf("Installed %s in %s", p.Name, c.Dir)
	if flags, ok := mode.Flags(); ok {
		msg += " (" + flags + ")"
	}
	fmt.Fprintln(a.Out, ui.Styles().Success.Render(msg))
	return nil
}

// Target lists the workspace manifests and picks the install target.
func (a *App) Target(ctx context.Context) (workspace.Candidate, error) {
	cs, err := a.Workspace.Candidates(ctx)
	if err != nil {
		return workspace.Candidate{}, fmt.Errorf("listing manifests: %w", err)
	}
	c, err := target.Resolve(ctx, cs, target.SelectorFunc(a.selectManifest))
	if errors.Is(err, target.ErrNoTarget) {
		a.Channel.Appendf("install: %v", err)
	}
	return c, err
}

func (a *App) selectManifest(ctx context.Context, cs []workspace.Candidate) (workspace.Candidate, bool, error) {
	item, ok, err := a.Prompter.Select(ctx, "Install into", ui.ManifestItems(cs, a.Root))
	if err != nil || !ok {
		return workspace.Candidate{}, ok, err
	}
	return item.Value.(workspace.Candidate), true, nil
}

// logFailure writes err to the channel, with the captured stderr of a
// failed process on its own lines.
func (a *App) logFailure(op string, err error) {
	var perr *pkgmanager.ProcessError
	if errors.As(err, &perr) && perr.Stderr != "" {
		a.Channel.Appendf("%s failed: %s exited with status %d", op, perr.Command, perr.ExitCode)
		a.Channel.Append(strings.TrimRight(perr.Stderr, "\n"))
		return
	}
	a.Channel.Appendf("%s failed: %v", op, err)
}
