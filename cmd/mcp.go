package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Amor-Self-learning/docview/internal/content"
	mcpserver "github.com/Amor-Self-learning/docview/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the documentation sections and files to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		mcpserver.Version = Version
		fetcher := &content.FileFetcher{Dir: cfg.DocsDir}

		fmt.Fprintf(os.Stderr, "docview MCP server started on stdio (docs=%s, sections=%d)\n",
			cfg.DocsDir, cfg.Registry().Len())

		srv := mcpserver.NewServer(cfg.Registry(), fetcher, cfg.Home)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
