// ABOUTME: Tests for folding rows into records, including wrapped descriptions
// ABOUTME: Property tests check purity and that every named row yields one record

package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const header = "NAME | DESCRIPTION | VERSION"

func TestParseOutput_HeaderOnlyYieldsNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseOutput(header))
}

func TestParseOutput_ContinuationMergesIntoPrevious(t *testing.T) {
	t.Parallel()

	pkgs := ParseOutput(header + "\nfoo | a thing | 1.0.0\n | continued text | ")

	require.Len(t, pkgs, 1)
	assert.Equal(t, "foo", pkgs[0].Name)
	assert.Equal(t, "foo", pkgs[0].Label)
	assert.Equal(t, "1.0.0", pkgs[0].Version)
	assert.Equal(t, "a thing continued text", pkgs[0].Detail)
}

func TestParseOutput_MostRecentFirst(t *testing.T) {
	t.Parallel()

	pkgs := ParseOutput(header + "\nbar | thing2 | 2.0.0\nfoo | thing1 | 1.0.0")

	require.Len(t, pkgs, 2)
	assert.Equal(t, "foo", pkgs[0].Name)
	assert.Equal(t, "thing1", pkgs[0].Detail)
	assert.Equal(t, "1.0.0", pkgs[0].Version)
	assert.Equal(t, "bar", pkgs[1].Name)
	assert.Equal(t, "thing2", pkgs[1].Detail)
	assert.Equal(t, "2.0.0", pkgs[1].Version)
}

func TestParseOutput_Placeholders(t *testing.T) {
	t.Parallel()

	pkgs := ParseOutput(header + "\nbare |  | ")

	require.Len(t, pkgs, 1)
	assert.Equal(t, NoDescription, pkgs[0].Detail)
	assert.Equal(t, NoVersion, pkgs[0].Version)
}

func TestParseOutput_ContinuationOnlyAffectsCurrentRecord(t *testing.T) {
	t.Parallel()

	out := strings.Join([]string{
		header,
		"a | first | 1.0.0",
		" | wraps a | ",
		"b | second | 2.0.0",
		" | wraps b | ",
		" | and again | ",
	}, "\n")

	res := Parse(out)

	require.Len(t, res.Packages, 2)
	assert.Equal(t, "second wraps b and again", res.Packages[0].Detail)
	assert.Equal(t, "first wraps a", res.Packages[1].Detail)
	assert.Equal(t, 3, res.Merged)
	assert.Zero(t, res.Dropped)
}

func TestParseOutput_OrphanContinuationDropped(t *testing.T) {
	t.Parallel()

	res := Parse(header + "\n | orphan | \nfoo | real | 1.0.0")

	require.Len(t, res.Packages, 1)
	assert.Equal(t, "real", res.Packages[0].Detail)
	assert.Equal(t, 1, res.Dropped)
}

func TestParseOutput_TrailingNewlineKeepsDetail(t *testing.T) {
	t.Parallel()

	pkgs := ParseOutput(header + "\nfoo | a thing | 1.0.0\n")

	require.Len(t, pkgs, 1)
	assert.Equal(t, "a thing", pkgs[0].Detail)
}

func TestParseOutput_ContinuationOntoPlaceholder(t *testing.T) {
	t.Parallel()

	pkgs := ParseOutput(header + "\nfoo |  | 1.0.0\n | late text | ")

	require.Len(t, pkgs, 1)
	assert.Equal(t, NoDescription+" late text", pkgs[0].Detail)
}

func TestParseOutput_NpmLongColumns(t *testing.T) {
	t.Parallel()

	out := "NAME | DESCRIPTION | AUTHOR | DATE | VERSION | KEYWORDS\n" +
		"left-pad | String left pad | =stevemao | 2018-04-09 | 1.3.0 | leftpad left pad padding\n"

	pkgs := ParseOutput(out)

	require.Len(t, pkgs, 1)
	p := pkgs[0]
	assert.Equal(t, "left-pad", p.Name)
	assert.Equal(t, "1.3.0", p.Version)
	assert.Equal(t, "=stevemao", p.Author)
	assert.Equal(t, "2018-04-09", p.Date)
	assert.Equal(t, "leftpad left pad padding", p.Keywords)
}

func TestChronological(t *testing.T) {
	t.Parallel()

	pkgs := ParseOutput(header + "\na | 1 | 1\nb | 2 | 2\nc | 3 | 3")
	chrono := Chronological(pkgs)

	names := make([]string, len(chrono))
	for i, p := range chrono {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, "c", pkgs[0].Name, "input must not be reordered")
}

func TestPackage_URL(t *testing.T) {
	t.Parallel()

	p := Package{Name: "@scope/pkg"}
	assert.Equal(t, "https://www.npmjs.org/package/@scope/pkg", p.URL("https://www.npmjs.org/package/"))
	assert.Equal(t, "https://example.com/p/@scope/pkg", p.URL("https://example.com/p"))
}

// genLine draws either a named row or a continuation row.
func genLine(t *rapid.T, i int) (string, bool) {
	named := rapid.Bool().Draw(t, fmt.Sprintf("named-%d", i))
	word := rapid.StringMatching(`[a-z][a-z0-9-]{0,8}`).Draw(t, fmt.Sprintf("word-%d", i))
	if named {
		return fmt.Sprintf("%s | about %s | 1.%d.0", word, word, i), true
	}
	return fmt.Sprintf(" | %s | ", word), false
}

func TestParseOutput_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "lines")
		lines := []string{header}
		named, orphans := 0, 0
		for i := range n {
			line, isNamed := genLine(t, i)
			if isNamed {
				named++
			} else if named == 0 {
				orphans++
			}
			lines = append(lines, line)
		}
		data := strings.Join(lines, "\n")

		first := Parse(data)
		second := Parse(data)
		if len(first.Packages) != len(second.Packages) {
			t.Fatalf("parse is not deterministic: %d vs %d records", len(first.Packages), len(second.Packages))
		}
		for i := range first.Packages {
			if first.Packages[i] != second.Packages[i] {
				t.Fatalf("record %d differs between runs: %+v vs %+v", i, first.Packages[i], second.Packages[i])
			}
		}

		if len(first.Packages) != named {
			t.Fatalf("got %d records; want %d (one per named row)", len(first.Packages), named)
		}
		if first.Dropped != orphans {
			t.Fatalf("Dropped = %d; want %d", first.Dropped, orphans)
		}
		if first.Merged+first.Dropped+named != n {
			t.Fatalf("merged %d + dropped %d + named %d != %d lines", first.Merged, first.Dropped, named, n)
		}
	})
}
