// Package target decides which manifest receives an install.
package target

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauromedda/pkgfind/internal/workspace"
)

var (
	// ErrNoTarget means the workspace has no manifest. Callers show it to the user.
	ErrNoTarget = errors.New("no package.json found in workspace")
	// ErrCancelled means the user dismissed the selection. Callers abort silently.
	ErrCancelled = errors.New("selection cancelled")
)

// Selector asks the user to pick one of several candidates.
// ok is false when the user cancelled.
type Selector interface {
	SelectManifest(ctx context.Context, candidates []workspace.Candidate) (c workspace.Candidate, ok bool, err error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(ctx context.Context, candidates []workspace.Candidate) (workspace.Candidate, bool, error)

// SelectManifest calls f.
func (f SelectorFunc) SelectManifest(ctx context.Context, candidates []workspace.Candidate) (workspace.Candidate, bool, error) {
	return f(ctx, candidates)
}

// Resolve picks the install target:
//   - no candidates: ErrNoTarget
//   - one candidate: that candidate, without prompting
//   - several: whatever sel returns, or ErrCancelled
func Resolve(ctx context.Context, candidates []workspace.Candidate, sel Selector) (workspace.Candidate, error) {
	switch len(candidates) {
	case 0:
		return workspace.Candidate{}, ErrNoTarget
	case 1:
		return candidates[0], nil
	}

	c, ok, err := sel.SelectManifest(ctx, candidates)
	if err != nil {
		return workspace.Candidate{}, fmt.Errorf("selecting manifest: %w", err)
	}
	if !ok {
		return workspace.Candidate{}, ErrCancelled
	}
	return c, nil
}
