// ABOUTME: Thin wrapper over sahilm/fuzzy for fuzzy string matching
// ABOUTME: Returns match indexes ranked best first; callers map them back to their items

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Source provides the strings to match against without copying them out.
type Source interface {
	String(i int) string
	Len() int
}

// Strings adapts a string slice to Source.
type Strings []string

func (s Strings) String(i int) string { return s[i] }
func (s Strings) Len() int            { return len(s) }

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	return FindFrom(pattern, Strings(items))
}

// FindFrom performs fuzzy matching using a custom string source.
func FindFrom(pattern string, data Source) []Match {
	results := fuzzy.FindFrom(pattern, data)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
