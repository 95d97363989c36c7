package cmd

import (
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Print the section outline of a document",
	Long:  `Print one "[id] title" line per section, indented two spaces per level.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd, args[0])
		if err != nil {
			return err
		}
		newPrinter(cmd).Outline(tree)
		return nil
	},
}

var idsCmd = &cobra.Command{
	Use:   "ids <file>",
	Short: "List every section id in document order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd, args[0])
		if err != nil {
			return err
		}
		newPrinter(cmd).NodeIDs(tree.AllNodeIDs())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show document title, section count, depth and token estimate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd, args[0])
		if err != nil {
			return err
		}
		newPrinter(cmd).Summary(tree)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{outlineCmd, idsCmd, statsCmd} {
		addDocIDFlag(c)
		rootCmd.AddCommand(c)
	}
}
