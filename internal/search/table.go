// ABOUTME: Splits column-aligned package-manager output into a header and data lines
// ABOUTME: Cells are separated by " | " and trimmed; blank cells are absent, never ""

package search

import "strings"

// Delimiter separates cells in `search --long` output.
const Delimiter = " | "

// Column names emitted by `npm search --long`.
const (
	ColumnName        = "NAME"
	ColumnDescription = "DESCRIPTION"
	ColumnAuthor      = "AUTHOR"
	ColumnDate        = "DATE"
	ColumnVersion     = "VERSION"
	ColumnKeywords    = "KEYWORDS"
)

// Table is raw search output split into its header columns and data lines.
type Table struct {
	Columns []string
	Lines   []string
}

// ParseTable splits data on newlines. The first line is the header; every
// following line is kept, in order, as a data line.
// Empty input yields a single empty column and no data lines.
func ParseTable(data string) Table {
	raw := strings.Split(data, "\n")
	return Table{
		Columns: SplitRow(raw[0]),
		Lines:   raw[1:],
	}
}

// SplitRow splits a line on Delimiter and trims every cell.
func SplitRow(line string) []string {
	cells := strings.Split(line, Delimiter)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// Fields maps column names to cell values for one data line.
// A column whose cell was blank has no entry at all.
type Fields map[string]string

// Lookup returns the cell for column and whether it was present.
func (f Fields) Lookup(column string) (string, bool) {
	v, ok := f[column]
	return v, ok
}

// ParseFields zips the cells of line against columns by position.
// Cells beyond the column count are ignored; missing trailing cells are absent.
func ParseFields(line string, columns []string) Fields {
	cells := SplitRow(line)
	fields := make(Fields, len(columns))
	for i, cell := range cells {
		if i >= len(columns) {
			break
		}
		if cell == "" {
			// A later blank cell under a duplicate header clears an earlier value.
			delete(fields, columns[i])
			continue
		}
		fields[columns[i]] = cell
	}
	return fields
}

// Rows converts every data line of t into a typed Row.
func (t Table) Rows() []Row {
	rows := make([]Row, len(t.Lines))
	for i, line := range t.Lines {
		rows[i] = RowFromFields(ParseFields(line, t.Columns))
	}
	return rows
}
