package cmd

import (
	"github.com/spf13/cobra"

	"github.com/itsmostafa/pageindex/internal/pageindex"
)

// stdinPath makes a command read the document from standard input.
const stdinPath = "-"

var docID string

func addDocIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&docID, "doc-id", "", "Document id (default: file name without extension, or \"stdin\")")
}

// loadTree parses the document at path, or stdin when path is "-".
func loadTree(cmd *cobra.Command, path string) (*pageindex.Tree, error) {
	id := docID
	if path == stdinPath {
		if id == "" {
			id = "stdin"
		}
		return pageindex.FromReader(id, cmd.InOrStdin())
	}
	if id == "" {
		id = pageindex.DocIDFromPath(path)
	}
	return pageindex.FromFile(id, path)
}
