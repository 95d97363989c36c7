package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/pageindex/internal/pageindex"
)

var withChildren bool

var nodeCmd = &cobra.Command{
	Use:   "node <file> <node-id>",
	Short: "Print one section with its breadcrumb",
	Long: `Print a section's breadcrumb, title and body text.

With --children the body is followed by every nested section, each
introduced by a heading line of its depth.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd, args[0])
		if err != nil {
			return err
		}

		get := pageindex.GetNode
		if withChildren {
			get = pageindex.GetNodeWithChildren
		}
		res, ok := get(tree, args[1])
		if !ok {
			return fmt.Errorf("node %q not found in %s", args[1], tree.DocID)
		}

		newPrinter(cmd).Node(res)
		return nil
	},
}

var childrenCmd = &cobra.Command{
	Use:   "children <file> <node-id>",
	Short: "List the direct children of a section",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd, args[0])
		if err != nil {
			return err
		}
		newPrinter(cmd).Children(pageindex.GetChildren(tree, args[1]))
		return nil
	},
}

func init() {
	nodeCmd.Flags().BoolVarP(&withChildren, "children", "c", false, "Include the text of nested sections")
	addDocIDFlag(nodeCmd)
	addDocIDFlag(childrenCmd)

	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(childrenCmd)
}
