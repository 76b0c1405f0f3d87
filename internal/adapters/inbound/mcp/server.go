package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// NewOrderDeskMCPServer creates an MCP server exposing the order and product
// operations as tools, backed by the given outbound ports.
func NewOrderDeskMCPServer(orders domain.OrderAPI, products domain.ProductAPI) *server.MCPServer {
	s := server.NewMCPServer(
		"orderdesk",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, orders, products)

	return s
}
