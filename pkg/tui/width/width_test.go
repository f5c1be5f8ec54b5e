// ABOUTME: Tests for display width measurement and truncation
// ABOUTME: Covers ASCII, CJK, emoji, and narrow budgets

package width

import "testing"

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "left-pad", 8},
		{"cjk", "日本語", 6},
		{"emoji", "📦", 2},
		{"combining accent", "é", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Of(tt.input); got != tt.want {
				t.Errorf("Of(%q) = %d; want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"fits", "lodash", 10, "lodash"},
		{"exact", "lodash", 6, "lodash"},
		{"clipped", "lodash.debounce", 8, "lodash.…"},
		{"one column", "lodash", 1, "…"},
		{"zero", "lodash", 0, ""},
		{"wide not split", "日本語", 4, "日…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q; want %q", tt.input, tt.max, got, tt.want)
			}
			if Of(got) > tt.max {
				t.Errorf("Truncate(%q, %d) is %d columns wide", tt.input, tt.max, Of(got))
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q; want %q", got, "ab  ")
	}
	if got := PadRight("abcdef", 4); got != "abc…" {
		t.Errorf("PadRight = %q; want %q", got, "abc…")
	}
}
