// ABOUTME: Discovers package.json manifests in a workspace and loads them as install targets
// ABOUTME: Walks with include/exclude globs, then reads manifests concurrently via errgroup

package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	plog "github.com/mauromedda/pkgfind/internal/log"
	"github.com/mauromedda/pkgfind/internal/pkgmanager"
)

// Default globs, relative to the workspace root.
const (
	DefaultInclude = "**/package.json"
	DefaultExclude = "**/node_modules/**"
)

// maxConcurrentReads bounds parallel manifest reads.
const maxConcurrentReads = 8

// Candidate is a directory holding a manifest that could receive an install.
type Candidate struct {
	Path     string // manifest file
	Dir      string // directory the install runs in
	Manifest *pkgmanager.Manifest
}

// Name returns the manifest's declared name, if any.
func (c Candidate) Name() (string, bool) {
	if c.Manifest == nil || c.Manifest.Name == "" {
		return "", false
	}
	return c.Manifest.Name, true
}

// Workspace locates manifests under Root.
type Workspace struct {
	Root    string
	Include string
	Exclude string
}

// New returns a Workspace rooted at root with the default globs.
func New(root string) *Workspace {
	return &Workspace{Root: root, Include: DefaultInclude, Exclude: DefaultExclude}
}

// FindManifests returns the paths of files under Root matching Include and
// not matching Exclude, sorted lexically. Excluded directories are not
// descended into.
func (w *Workspace) FindManifests(ctx context.Context) ([]string, error) {
	include, err := Compile(w.Include)
	if err != nil {
		return nil, fmt.Errorf("include glob: %w", err)
	}
	var exclude *Glob
	if w.Exclude != "" {
		if exclude, err = Compile(w.Exclude); err != nil {
			return nil, fmt.Errorf("exclude glob: %w", err)
		}
	}

	var paths []string
	err = filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(w.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if exclude != nil && exclude.Match(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && include.Match(rel) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", w.Root, err)
	}
	slices.Sort(paths)
	return paths, nil
}

// Load reads every manifest in paths. Manifests that cannot be parsed are
// skipped with a warning; read errors abort the load. Order follows paths.
func Load(ctx context.Context, paths []string) ([]Candidate, error) {
	loaded := make([]*Candidate, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			m, err := pkgmanager.ParseManifest(data)
			if err != nil {
				plog.Warn("skipping %s: %v", path, err)
				return nil
			}
			loaded[i] = &Candidate{Path: path, Dir: filepath.Dir(path), Manifest: m}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(paths))
	for _, c := range loaded {
		if c != nil {
			candidates = append(candidates, *c)
		}
	}
	return candidates, nil
}

// Candidates finds and loads every manifest in the workspace.
func (w *Workspace) Candidates(ctx context.Context) ([]Candidate, error) {
	paths, err := w.FindManifests(ctx)
	if err != nil {
		return nil, err
	}
	plog.Debug("workspace %s: %d manifest(s)", w.Root, len(paths))
	return Load(ctx, paths)
}
