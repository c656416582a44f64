package ui

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii", 'a', 1},
		{"space", ' ', 1},
		{"cjk wide", '日', 2},
		{"combining mark", '́', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.want {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"hello", 5},
		{"", 0},
		{"日本", 4},
		{"a日b", 4},
	}

	for _, tt := range tests {
		if got := StringWidth(tt.s); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxWidth int
		want     string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abc", 3, "abc"},
		{"truncated", "abcdef", 3, "abc"},
		{"zero", "abc", 0, ""},
		{"wide char not split", "a日b", 2, "a"},
		{"wide char fits", "a日b", 3, "a日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateToWidth(tt.s, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.s, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidthWithEllipsis(t *testing.T) {
	if got := TruncateToWidthWithEllipsis("abcdefgh", 6); got != "abc..." {
		t.Errorf("got %q, want %q", got, "abc...")
	}
	if got := TruncateToWidthWithEllipsis("abc", 6); got != "abc" {
		t.Errorf("short string should pass through, got %q", got)
	}
}

func TestPadStringToWidth(t *testing.T) {
	if got := PadStringToWidth("ab", 5); got != "ab   " {
		t.Errorf("got %q", got)
	}
	if got := PadStringToWidth("abcdef", 3); got != "abcdef" {
		t.Errorf("wider string should be unchanged, got %q", got)
	}
}
