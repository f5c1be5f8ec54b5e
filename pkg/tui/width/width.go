// ABOUTME: Display width of plain text by grapheme cluster, for list row layout
// ABOUTME: Truncate clips to a column budget with a trailing ellipsis

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Of returns the number of terminal columns s occupies. s must not contain
// escape sequences; style after measuring.
func Of(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// Truncate clips s to at most maxWidth columns. When clipping happens the
// last column holds an ellipsis. Wide clusters are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Of(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	var b strings.Builder
	budget := maxWidth - 1
	col := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		cw := clusterWidth(cluster)
		if col+cw > budget {
			break
		}
		b.WriteString(cluster)
		col += cw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// PadRight pads s with spaces to exactly n columns, truncating if longer.
func PadRight(s string, n int) string {
	s = Truncate(s, n)
	if w := Of(s); w < n {
		s += strings.Repeat(" ", n-w)
	}
	return s
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// clusterWidth returns the width of one grapheme cluster from its first rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
