// ABOUTME: Typed search rows with optional cells and the reconciled Package record
// ABOUTME: Absent cells stay distinct from empty strings; placeholders apply only to Package

package search

import "strings"

// Placeholders shown when a record has no version or description.
const (
	NoVersion     = "[No Version]"
	NoDescription = "[No Description]"
)

// Cell is an optional cell value. Valid is false when the cell was blank.
type Cell struct {
	Value string
	Valid bool
}

// Row is one data line of search output with the columns pkgfind uses.
// A Row without a Name continues the description of the previous record.
type Row struct {
	Name        Cell
	Description Cell
	Version     Cell
	Author      Cell
	Date        Cell
	Keywords    Cell
}

// RowFromFields picks the known columns out of f.
func RowFromFields(f Fields) Row {
	cell := func(column string) Cell {
		v, ok := f.Lookup(column)
		return Cell{Value: v, Valid: ok}
	}
	return Row{
		Name:        cell(ColumnName),
		Description: cell(ColumnDescription),
		Version:     cell(ColumnVersion),
		Author:      cell(ColumnAuthor),
		Date:        cell(ColumnDate),
		Keywords:    cell(ColumnKeywords),
	}
}

// IsContinuation reports whether r carries wrapped text for the previous record.
func (r Row) IsContinuation() bool {
	return !r.Name.Valid
}

// Package is a single search result.
type Package struct {
	Label   string // list label, the package name
	Name    string // name passed to install
	Version string // version or NoVersion
	Detail  string // description or NoDescription, with continuations appended

	Author   string
	Date     string
	Keywords string
}

// newPackage builds a record from a row that has a name.
func newPackage(r Row) Package {
	p := Package{
		Label:    r.Name.Value,
		Name:     r.Name.Value,
		Version:  NoVersion,
		Detail:   NoDescription,
		Author:   r.Author.Value,
		Date:     r.Date.Value,
		Keywords: r.Keywords.Value,
	}
	if r.Version.Valid {
		p.Version = r.Version.Value
	}
	if r.Description.Valid {
		p.Detail = r.Description.Value
	}
	return p
}

// merge appends the continuation row's description to the detail.
// An absent description contributes nothing once the result is trimmed.
func (p Package) merge(r Row) Package {
	p.Detail = strings.TrimSpace(p.Detail + " " + r.Description.Value)
	return p
}

// URL returns the registry page for the package under base.
func (p Package) URL(base string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + p.Name
}
