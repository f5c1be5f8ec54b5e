// ABOUTME: Tests for header/data splitting and positional cell zipping
// ABOUTME: Covers blank cells as absent, short rows, and extra cells

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable_HeaderAndLines(t *testing.T) {
	t.Parallel()

	tbl := ParseTable("NAME | DESCRIPTION | VERSION\nfoo | a thing | 1.0.0\n | more | ")

	assert.Equal(t, []string{"NAME", "DESCRIPTION", "VERSION"}, tbl.Columns)
	assert.Equal(t, []string{"foo | a thing | 1.0.0", " | more | "}, tbl.Lines)
}

func TestParseTable_HeaderOnly(t *testing.T) {
	t.Parallel()

	tbl := ParseTable("NAME | DESCRIPTION | VERSION")

	assert.Len(t, tbl.Columns, 3)
	assert.Empty(t, tbl.Lines)
}

func TestParseTable_Empty(t *testing.T) {
	t.Parallel()

	tbl := ParseTable("")

	assert.Equal(t, []string{""}, tbl.Columns)
	assert.Empty(t, tbl.Lines)
}

func TestSplitRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"trims cells", "  foo   |  bar  ", []string{"foo", "bar"}},
		{"leading blank", " | continued | ", []string{"", "continued", ""}},
		{"no delimiter", "just text", []string{"just text"}},
		{"pipe without spaces is not a delimiter", "a|b", []string{"a|b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitRow(tt.line))
		})
	}
}

func TestParseFields_BlankCellIsAbsent(t *testing.T) {
	t.Parallel()

	cols := []string{"NAME", "DESCRIPTION", "VERSION"}
	f := ParseFields(" | wrapped text | ", cols)

	_, ok := f.Lookup("NAME")
	assert.False(t, ok, "blank NAME must be absent, not empty")

	desc, ok := f.Lookup("DESCRIPTION")
	require.True(t, ok)
	assert.Equal(t, "wrapped text", desc)

	_, ok = f.Lookup("VERSION")
	assert.False(t, ok)
}

func TestParseFields_ShortAndLongRows(t *testing.T) {
	t.Parallel()

	cols := []string{"NAME", "DESCRIPTION", "VERSION"}

	short := ParseFields("foo", cols)
	assert.Equal(t, Fields{"NAME": "foo"}, short)

	long := ParseFields("foo | desc | 1.0.0 | extra | more", cols)
	assert.Equal(t, Fields{"NAME": "foo", "DESCRIPTION": "desc", "VERSION": "1.0.0"}, long)
}

func TestRowFromFields(t *testing.T) {
	t.Parallel()

	r := RowFromFields(Fields{"NAME": "left-pad", "AUTHOR": "=stevemao"})

	assert.Equal(t, Cell{Value: "left-pad", Valid: true}, r.Name)
	assert.Equal(t, Cell{Value: "=stevemao", Valid: true}, r.Author)
	assert.False(t, r.Description.Valid)
	assert.False(t, r.Version.Valid)
	assert.False(t, r.IsContinuation())
	assert.True(t, Row{}.IsContinuation())
}
