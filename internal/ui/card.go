// ABOUTME: Renders search results as a markdown card through glamour
// ABOUTME: Used by `search --print` for non-interactive output

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/pkgfind/internal/search"
)

// CardRenderer turns search results into terminal-styled markdown.
type CardRenderer struct {
	// Style is a glamour standard style name; empty means auto-detect.
	Style string
	Width int
	// RegistryURL, when set, adds a link line per package.
	RegistryURL string
}

// Markdown builds the card source for pkgs.
func (r CardRenderer) Markdown(query string, pkgs []search.Package) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", query)
	if len(pkgs) == 0 {
		b.WriteString("_No packages found._\n")
		return b.String()
	}
	for _, p := range pkgs {
		item := PackageItem(p)
		fmt.Fprintf(&b, "## %s `%s`\n\n", item.Label, item.Description)
		fmt.Fprintf(&b, "%s\n\n", item.Detail)
		if p.Author != "" || p.Date != "" {
			fmt.Fprintf(&b, "*%s*\n\n", strings.TrimSpace(p.Author+" "+p.Date))
		}
		if r.RegistryURL != "" && p.Name != "" {
			fmt.Fprintf(&b, "<%s>\n\n", p.URL(r.RegistryURL))
		}
	}
	return b.String()
}

// Render returns the styled card. Rendering failures fall back to the
// markdown source.
func (r CardRenderer) Render(query string, pkgs []search.Package) string {
	md := r.Markdown(query, pkgs)

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(r.wrap())}
	if r.Style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n ") + "\n"
}

func (r CardRenderer) wrap() int {
	if r.Width <= 0 {
		return 80
	}
	return r.Width
}
