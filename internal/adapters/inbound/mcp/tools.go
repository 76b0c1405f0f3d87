package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

// registerTools registers all OrderDesk MCP tools on the given server.
func registerTools(s *server.MCPServer, orders domain.OrderAPI, products domain.ProductAPI) {
	orderSvc := application.NewOrderService(orders, products)
	catalogSvc := application.NewCatalogService(products)
	productSvc := application.NewProductService(products)

	// 1. orderdesk_list_orders
	s.AddTool(
		mcplib.NewTool("orderdesk_list_orders",
			mcplib.WithDescription("List orders with collection statistics (count, revenue, pending, average value) as JSON"),
			mcplib.WithString("search", mcplib.Description("Filter by order number or id substring")),
		),
		handleListOrders(orderSvc),
	)

	// 2. orderdesk_get_order
	s.AddTool(
		mcplib.NewTool("orderdesk_get_order",
			mcplib.WithDescription("Returns an order header together with its line items"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Order id")),
		),
		handleGetOrder(orderSvc),
	)

	// 3. orderdesk_save_order
	s.AddTool(
		mcplib.NewTool("orderdesk_save_order",
			mcplib.WithDescription("Create or edit an order from product lines. Totals are recomputed from the lines before saving."),
			mcplib.WithString("id", mcplib.Description("Order id to edit (omit to create)")),
			mcplib.WithString("number", mcplib.Description("Order number")),
			mcplib.WithString("date", mcplib.Description("Order date (YYYY-MM-DD, defaults to today on create)")),
			mcplib.WithString("items", mcplib.Required(), mcplib.Description("Comma-separated lines as productID:qty; qty 0 removes a line")),
		),
		handleSaveOrder(orderSvc, catalogSvc),
	)

	// 4. orderdesk_cycle_status
	s.AddTool(
		mcplib.NewTool("orderdesk_cycle_status",
			mcplib.WithDescription("Advance an order's status (Pending → InProgress → Completed → Pending)"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Order id")),
		),
		handleCycleStatus(orderSvc),
	)

	// 5. orderdesk_delete_order
	s.AddTool(
		mcplib.NewTool("orderdesk_delete_order",
			mcplib.WithDescription("Delete an order"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Order id")),
		),
		handleDeleteOrder(orderSvc),
	)

	// 6. orderdesk_list_products
	s.AddTool(
		mcplib.NewTool("orderdesk_list_products",
			mcplib.WithDescription("List catalog products with statistics as JSON"),
			mcplib.WithString("search", mcplib.Description("Filter by name substring")),
			mcplib.WithString("sort", mcplib.Description("Sort key: name or unit_price (default: name)")),
			mcplib.WithBoolean("desc", mcplib.Description("Sort descending")),
		),
		handleListProducts(catalogSvc),
	)

	// 7. orderdesk_save_product
	s.AddTool(
		mcplib.NewTool("orderdesk_save_product",
			mcplib.WithDescription("Create or update a catalog product. Fields are validated before any network call."),
			mcplib.WithString("id", mcplib.Description("Product id to update (omit to create)")),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
			mcplib.WithString("price", mcplib.Required(), mcplib.Description("Unit price")),
			mcplib.WithString("image", mcplib.Description("Image URL")),
		),
		handleSaveProduct(productSvc),
	)

	// 8. orderdesk_delete_product
	s.AddTool(
		mcplib.NewTool("orderdesk_delete_product",
			mcplib.WithDescription("Delete a catalog product"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id")),
		),
		handleDeleteProduct(productSvc),
	)
}

func handleListOrders(svc *application.OrderService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		search, _ := request.GetArguments()["search"].(string)
		view, err := svc.Overview(ctx, search)
		if err != nil {
			return errorResult(fmt.Sprintf("listing orders failed: %v", err)), nil
		}
		return jsonResult(view)
	}
}

func handleGetOrder(svc *application.OrderService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := requireID(request, "id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		detail, err := svc.Load(ctx, id)
		if err != nil {
			return errorResult(fmt.Sprintf("loading order %d failed: %v", id, err)), nil
		}
		return jsonResult(detail)
	}
}

func handleSaveOrder(orderSvc *application.OrderService, catalogSvc *application.CatalogService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		itemsStr, err := request.RequireString("items")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		mode := application.SaveCreate
		header := domain.Order{}
		composer := domain.NewComposer(0)
		if id, ok := optionalID(request, "id"); ok {
			mode = application.SaveUpdate
			detail, err := orderSvc.Load(ctx, id)
			if err != nil {
				return errorResult(fmt.Sprintf("loading order %d failed: %v", id, err)), nil
			}
			header = detail.Order
			composer = domain.NewComposerWith(id, detail.Items)
		}

		args := request.GetArguments()
		if number, ok := args["number"].(string); ok && number != "" {
			header.OrderNumber = number
		}
		if date, ok := args["date"].(string); ok && date != "" {
			header.OrderDate = date
		}

		for _, spec := range splitAndTrim(itemsStr) {
			productID, qty, err := parseItemSpec(spec)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			if composer.Contains(productID) || qty <= 0 {
				composer.SetQuantity(productID, qty)
				continue
			}
			product, err := catalogSvc.Get(ctx, productID)
			if err != nil {
				return errorResult(fmt.Sprintf("looking up product %d failed: %v", productID, err)), nil
			}
			composer.AddOrIncrement(product)
			composer.SetQuantity(productID, qty)
		}

		order, err := orderSvc.Save(ctx, mode, header, composer.Items())
		if err != nil {
			return errorResult(fmt.Sprintf("saving order failed: %v", err)), nil
		}
		return jsonResult(order)
	}
}

func handleCycleStatus(svc *application.OrderService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := requireID(request, "id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		prev, next, err := svc.Cycle(ctx, id)
		if err != nil {
			return errorResult(fmt.Sprintf("cycling order %d failed: %v", id, err)), nil
		}
		return jsonResult(map[string]any{"id": id, "previous": prev, "status": next})
	}
}

func handleDeleteOrder(svc *application.OrderService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := requireID(request, "id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if err := svc.Delete(ctx, id); err != nil {
			return errorResult(fmt.Sprintf("deleting order %d failed: %v", id, err)), nil
		}
		return textResult(fmt.Sprintf("Deleted order %d.", id)), nil
	}
}

func handleListProducts(svc *application.CatalogService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		search, _ := args["search"].(string)
		sortBy, _ := args["sort"].(string)
		desc, _ := args["desc"].(bool)

		key := domain.SortByName
		if sortBy != "" {
			key = domain.SortKey(sortBy)
			if key != domain.SortByName && key != domain.SortByPrice {
				return errorResult(fmt.Sprintf("invalid sort %q, expected name or unit_price", sortBy)), nil
			}
		}
		order := domain.SortAsc
		if desc {
			order = domain.SortDesc
		}

		view, err := svc.Browse(ctx, application.CatalogQuery{Search: search, SortBy: key, Order: order})
		if err != nil {
			return errorResult(fmt.Sprintf("listing products failed: %v", err)), nil
		}
		return jsonResult(view)
	}
}

func handleSaveProduct(svc *application.ProductService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		price, err := request.RequireString("price")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		image, _ := request.GetArguments()["image"].(string)

		form := domain.ProductForm{Name: name, UnitPrice: price, ImageURL: image}

		var product domain.Product
		if id, ok := optionalID(request, "id"); ok {
			product, err = svc.Update(ctx, id, form)
		} else {
			product, err = svc.Create(ctx, form)
		}
		if err != nil {
			return errorResult(fmt.Sprintf("saving product failed: %v", err)), nil
		}
		return jsonResult(product)
	}
}

func handleDeleteProduct(svc *application.ProductService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := requireID(request, "id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if err := svc.Delete(ctx, id); err != nil {
			return errorResult(fmt.Sprintf("deleting product %d failed: %v", id, err)), nil
		}
		return textResult(fmt.Sprintf("Deleted product %d.", id)), nil
	}
}

// requireID reads a required string argument and parses it as a positive id.
func requireID(request mcplib.CallToolRequest, key string) (int, error) {
	raw, err := request.RequireString(key)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return id, nil
}

// optionalID reads an optional string id argument; ok is false when absent.
func optionalID(request mcplib.CallToolRequest, key string) (int, bool) {
	raw, _ := request.GetArguments()[key].(string)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseItemSpec parses a line spec of the form "productID:qty".
func parseItemSpec(spec string) (productID, qty int, err error) {
	left, right, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid item %q, expected productID:qty", spec)
	}
	productID, err = strconv.Atoi(strings.TrimSpace(left))
	if err != nil || productID <= 0 {
		return 0, 0, fmt.Errorf("invalid product id in item %q", spec)
	}
	qty, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quantity in item %q", spec)
	}
	return productID, qty, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
