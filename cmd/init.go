package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Amor-Self-learning/docview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .docview.yml with discovered sections",
	Long:  `Runs an interactive wizard that discovers documentation sections from the docs directory and writes the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", config.DefaultFile)
			}
		}
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
