package application

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// CatalogService loads the product catalog and shapes it for listing:
// fetch → search → sort → stats.
type CatalogService struct {
	products domain.ProductAPI
}

func NewCatalogService(products domain.ProductAPI) *CatalogService {
	return &CatalogService{products: products}
}

// CatalogQuery narrows and orders a catalog listing.
type CatalogQuery struct {
	Search string
	SortBy domain.SortKey
	Order  domain.SortOrder
}

// CatalogView is the shaped catalog listing. Stats always cover the whole
// catalog, not just the rows the query keeps.
type CatalogView struct {
	Products []domain.Product    `json:"products"`
	Stats    domain.CatalogStats `json:"stats"`
}

// Browse fetches the catalog and applies the query. A fetch failure leaves
// the catalog unavailable as a whole, never partially populated.
func (s *CatalogService) Browse(ctx context.Context, q CatalogQuery) (*CatalogView, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	listed := domain.SearchProducts(products, q.Search)
	if q.SortBy != "" {
		listed = domain.SortProducts(listed, q.SortBy, q.Order)
	}

	return &CatalogView{
		Products: listed,
		Stats:    domain.ComputeCatalogStats(products),
	}, nil
}

// Get fetches a single product.
func (s *CatalogService) Get(ctx context.Context, id int) (domain.Product, error) {
	return s.products.GetProduct(ctx, id)
}
