package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docview",
	Short: "Serve a markdown documentation corpus as a navigable site",
	Long: `Docview renders a directory of markdown documentation as a hash-routed,
search-filterable single-page site: sections and files in a sidebar,
asynchronously loaded content with callouts and syntax highlighting,
and a persisted light/dark theme.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docview.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
