package application

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// ProductService handles product writes: validate the form, then call the
// backend. Validation failures never reach the network.
type ProductService struct {
	products domain.ProductAPI
}

func NewProductService(products domain.ProductAPI) *ProductService {
	return &ProductService{products: products}
}

// Create validates the form and creates a new product.
func (s *ProductService) Create(ctx context.Context, form domain.ProductForm) (domain.Product, error) {
	in, err := form.Validate()
	if err != nil {
		return domain.Product{}, err
	}
	return s.products.CreateProduct(ctx, in)
}

// Update validates the form and updates an existing product.
func (s *ProductService) Update(ctx context.Context, id int, form domain.ProductForm) (domain.Product, error) {
	in, err := form.Validate()
	if err != nil {
		return domain.Product{}, err
	}
	return s.products.UpdateProduct(ctx, id, in)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.products.DeleteProduct(ctx, id)
}
