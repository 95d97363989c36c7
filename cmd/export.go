package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/pageindex/internal/pageindex"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	exportFormat string
	exportOutput string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the document tree in its interchange form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd, args[0])
		if err != nil {
			return err
		}

		var out string
		switch strings.ToLower(exportFormat) {
		case formatJSON:
			out, err = tree.JSON()
		case formatYAML:
			out, err = tree.YAML()
		default:
			return fmt.Errorf("unsupported format %q (json, yaml)", exportFormat)
		}
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(out, "\n"))
			return nil
		}
		if err := os.WriteFile(exportOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <tree-file>",
	Short: "Load an exported tree and print its summary and outline",
	Long: `Load a tree written by "export" and print its summary and outline.
The format is taken from --format, or from the file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var (
			data []byte
			err  error
		)
		if path == stdinPath {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return fmt.Errorf("%w %s: %w", pageindex.ErrRead, path, err)
		}

		format := strings.ToLower(importFormat)
		if format == "" {
			format = formatFromPath(path)
		}

		var tree *pageindex.Tree
		switch format {
		case formatJSON:
			tree, err = pageindex.UnmarshalTree(data)
		case formatYAML:
			tree, err = pageindex.UnmarshalTreeYAML(data)
		default:
			return fmt.Errorf("unsupported format %q (json, yaml)", format)
		}
		if err != nil {
			return err
		}

		p := newPrinter(cmd)
		p.Summary(tree)
		p.Outline(tree)
		return nil
	},
}

func formatFromPath(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return formatYAML
	}
	return formatJSON
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", formatJSON, "Output format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
	addDocIDFlag(exportCmd)

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format (json, yaml)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
