package pageindex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrRead marks failures to obtain document text. It is never returned for
// text that was read but contains no headings.
var ErrRead = errors.New("read document")

// ErrInvalidEncoding is returned, wrapped in ErrRead, for input that is not UTF-8.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// FromMarkdown parses text already held in memory.
func FromMarkdown(docID, markdown string) *Tree {
	return ParseMarkdown(docID, markdown)
}

// FromFile reads path and parses its contents under docID.
func FromFile(docID, path string) (*Tree, error) {
	content, err := ReadMarkdownFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMarkdown(docID, content), nil
}

// FromReader reads r to the end and parses its contents under docID.
func FromReader(docID string, r io.Reader) (*Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: %w", ErrRead, ErrInvalidEncoding)
	}
	return ParseMarkdown(docID, string(b)), nil
}

// ReadMarkdownFile reads a file and returns its contents as text.
func ReadMarkdownFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, ErrInvalidEncoding)
	}
	return string(b), nil
}

// DocIDFromPath derives a document id from a file name, e.g.
// "notes/guide.md" becomes "guide".
func DocIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
