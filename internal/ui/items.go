// ABOUTME: Display adapters turning search results and manifests into list items
// ABOUTME: Items carry their source value so a selection can be mapped back

package ui

import (
	"path/filepath"

	"github.com/mauromedda/pkgfind/internal/search"
	"github.com/mauromedda/pkgfind/internal/workspace"
)

// NoName labels an item whose source has no name.
const NoName = "No name"

// ListItem represents a single entry in a select list.
type ListItem struct {
	Label       string
	Description string // shown beside the label
	Detail      string // trails the row
	Value       any    // the search.Package or workspace.Candidate behind the item
}

// PackageItem maps a search result to a list item: label is the package
// name, description the version, detail the description text.
func PackageItem(p search.Package) ListItem {
	label := p.Label
	if label == "" {
		label = p.Name
	}
	if label == "" {
		label = NoName
	}
	return ListItem{
		Label:       label,
		Description: p.Version,
		Detail:      p.Detail,
		Value:       p,
	}
}

// PackageItems maps every result with PackageItem.
func PackageItems(pkgs []search.Package) []ListItem {
	items := make([]ListItem, len(pkgs))
	for i, p := range pkgs {
		items[i] = PackageItem(p)
	}
	return items
}

// ManifestItem maps an install candidate to a list item labelled with the
// manifest's declared name. root, when set, shortens the detail path.
func ManifestItem(c workspace.Candidate, root string) ListItem {
	label, ok := c.Name()
	if !ok {
		label = NoName
	}
	detail := c.Path
	if root != "" {
		if rel, err := filepath.Rel(root, c.Path); err == nil {
			detail = rel
		}
	}
	var version string
	if c.Manifest != nil {
		version = c.Manifest.Version
	}
	return ListItem{
		Label:       label,
		Description: version,
		Detail:      detail,
		Value:       c,
	}
}

// ManifestItems maps every candidate with ManifestItem.
func ManifestItems(cs []workspace.Candidate, root string) []ListItem {
	items := make([]ListItem, len(cs))
	for i, c := range cs {
		items[i] = ManifestItem(c, root)
	}
	return items
}
