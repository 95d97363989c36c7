package pageindex

import (
	"testing"
)

func TestCountTokens(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		minExpected int
		maxExpected int
	}{
		{"empty string", "", 0, 0},
		{"single word", "hello", 1, 3},
		{"simple sentence", "Hello world!", 2, 5},
		{"longer text", "The quick brown fox jumps over the lazy dog.", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CountTokens(tt.input)
			if result < tt.minExpected || result > tt.maxExpected {
				t.Errorf("CountTokens(%q) = %d, want between %d and %d",
					tt.input, result, tt.minExpected, tt.maxExpected)
			}
		})
	}
}

func TestSubtreeTokens(t *testing.T) {
	tree := ParseMarkdown("doc1", sampleMarkdown)

	intro, _ := tree.Find("1")
	bg, _ := tree.Find("1.1")
	goals, _ := tree.Find("1.2")

	want := CountTokens(intro.Text) + CountTokens(bg.Text) + CountTokens(goals.Text)
	if got := SubtreeTokens(intro); got != want {
		t.Errorf("SubtreeTokens = %d, want %d", got, want)
	}

	if got := SubtreeTokens(bg); got != CountTokens(bg.Text) {
		t.Errorf("leaf SubtreeTokens = %d, want %d", got, CountTokens(bg.Text))
	}

	if got := SubtreeTokens(ParseMarkdown("empty", "").Root); got != 0 {
		t.Errorf("expected 0 for empty tree, got %d", got)
	}
}
