package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/ytgap/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Aliases: []string{"serve"},
	Short:   "Start the MCP server for AI agent integration",
	Long:    `Starts a Model Context Protocol (MCP) server on stdio, exposing the fetch_trends and generate_ideas tools to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cfg)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		log.Info().Str("provider", string(cfg.Provider)).Msg("ytgap MCP server started on stdio")

		return mcpserver.NewServer(svc).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
