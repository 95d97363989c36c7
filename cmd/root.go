package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/pageindex/internal/config"
	"github.com/itsmostafa/pageindex/internal/output"
	"github.com/itsmostafa/pageindex/internal/version"
)

var (
	cfg     config.Config
	noColor bool
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "pageindex",
	Short: "Index heading-structured documents as navigable trees",
	Long: `pageindex splits a markdown-style document at its '#' headings and builds a
tree of sections addressed by dotted ids such as "2.1.3".

Use the outline to pick a section, then fetch it with its breadcrumb and,
optionally, the text of everything nested under it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		loaded, err := config.Load(files...)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		if cmd.Flags().Changed("no-color") {
			cfg.NoColor = noColor
		}
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("pageindex %s\n", version.String()))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load settings from this file instead of .env")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), cfg.NoColor)
}
