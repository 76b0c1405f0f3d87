package domain

import "context"

// ProductAPI is the outbound port to the backend's product endpoints.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, error)
	ListProductsByOrder(ctx context.Context, orderID int) ([]OrderItem, error)
	CreateProduct(ctx context.Context, in ProductInput) (Product, error)
	UpdateProduct(ctx context.Context, id int, in ProductInput) (Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// OrderAPI is the outbound port to the backend's order endpoints.
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id int) (Order, error)
	CreateOrder(ctx context.Context, o Order) (Order, error)
	UpdateOrder(ctx context.Context, id int, o Order) (Order, error)
	CreateOrderLine(ctx context.Context, line OrderItem) error
	UpdateOrderLine(ctx context.Context, line OrderItem) error
	ChangeOrderStatus(ctx context.Context, id int, status Status) error
	DeleteOrder(ctx context.Context, id int) error
}

// ConfigLoader loads client configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
