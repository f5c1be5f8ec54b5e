// ABOUTME: Compiled doublestar globs for workspace manifest discovery
// ABOUTME: A trailing "/**" also matches the directory itself so excluded trees are pruned

package workspace

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob is a validated slash-separated pattern such as "**/node_modules/**".
type Glob struct {
	pattern string
	dir     string // pattern without a trailing "/**", or ""
}

// Compile validates pattern.
func Compile(pattern string) (*Glob, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty glob")
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob %q", pattern)
	}
	g := &Glob{pattern: pattern}
	if dir, ok := strings.CutSuffix(pattern, "/**"); ok && dir != "" {
		g.dir = dir
	}
	return g, nil
}

// String returns the source pattern.
func (g *Glob) String() string { return g.pattern }

// Match reports whether the slash-separated relative path rel matches.
func (g *Glob) Match(rel string) bool {
	if ok, err := doublestar.Match(g.pattern, rel); err == nil && ok {
		return true
	}
	if g.dir == "" {
		return false
	}
	ok, err := doublestar.Match(g.dir, rel)
	return err == nil && ok
}
