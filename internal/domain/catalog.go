package domain

import (
	"sort"
	"strings"
)

// SortKey selects the product attribute to sort on.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByPrice SortKey = "unit_price"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchProducts filters products whose name contains term,
// case-insensitively. An empty term matches everything. The input slice is
// never mutated.
func SearchProducts(products []Product, term string) []Product {
	if term == "" {
		out := make([]Product, len(products))
		copy(out, products)
		return out
	}
	needle := strings.ToLower(term)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a sorted copy. Names compare case-insensitively,
// prices numerically; ties preserve input order.
func SortProducts(products []Product, key SortKey, order SortOrder) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	less := func(a, b Product) bool {
		if key == SortByPrice {
			return a.UnitPrice < b.UnitPrice
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// CatalogStats summarizes the product catalog for the list view.
type CatalogStats struct {
	Count        int     `json:"count"`
	AveragePrice float64 `json:"average_price"`
	HighestPrice float64 `json:"highest_price"`
	LowestPrice  float64 `json:"lowest_price"`
}

// ComputeCatalogStats derives catalog statistics. An empty catalog yields
// all zeros.
func ComputeCatalogStats(products []Product) CatalogStats {
	if len(products) == 0 {
		return CatalogStats{}
	}

	stats := CatalogStats{
		Count:        len(products),
		HighestPrice: products[0].UnitPrice,
		LowestPrice:  products[0].UnitPrice,
	}
	var sum float64
	for _, p := range products {
		sum += p.UnitPrice
		if p.UnitPrice > stats.HighestPrice {
			stats.HighestPrice = p.UnitPrice
		}
		if p.UnitPrice < stats.LowestPrice {
			stats.LowestPrice = p.UnitPrice
		}
	}
	stats.AveragePrice = sum / float64(len(products))
	return stats
}
