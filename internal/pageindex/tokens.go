package pageindex

import (
	"strings"
	"unicode"
)

// CountTokens provides a simple token count approximation.
// For accurate counting, use a proper tokenizer like tiktoken.
func CountTokens(text string) int {
	if text == "" {
		return 0
	}

	// Most tokenizers produce ~1.3 tokens per word on average
	wordCount := len(strings.Fields(text))

	// Punctuation is typically split into separate tokens
	punctCount := 0
	for _, r := range text {
		if unicode.IsPunct(r) {
			punctCount++
		}
	}

	return int(float64(wordCount)*1.3) + punctCount/2
}

// SubtreeTokens estimates the tokens of a node's body plus all descendant bodies.
func SubtreeTokens(n *Node) int {
	total := 0
	n.Walk(func(node *Node) {
		total += CountTokens(node.Text)
	})
	return total
}
