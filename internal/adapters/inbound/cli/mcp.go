package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/orderdesk/orderdesk/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the OrderDesk MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start OrderDesk MCP server (stdio)",
		Long:  "Start the OrderDesk MCP server using stdio transport. This allows AI assistants to list, compose, and manage orders and products against the configured backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			s := mcpadapter.NewOrderDeskMCPServer(client, client)
			return server.ServeStdio(s)
		},
	}

	return cmd
}
