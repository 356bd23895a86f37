package catalog

import (
	"sort"
	"strings"

	"github.com/rohitkr5850/storefront/internal/domain"
)

// ApplyFilter produces the catalog view described by filter: every active
// constraint narrows the result, then a single sort mode orders it. The
// function is pure and deterministic; malformed or absent filter fields mean
// "no constraint", never an error, and an empty result is a valid outcome.
func ApplyFilter(products []*domain.Product, filter domain.ProductFilter) []*domain.Product {
	out := make([]*domain.Product, 0, len(products))

	search := strings.ToLower(filter.Search)
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Rating != nil && p.Rating < *filter.Rating {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, filter.SortBy)
	return out
}

// matchesSearch reports whether the lower-cased search term is a substring
// of the product's title, description or category.
func matchesSearch(p *domain.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Category), search)
}

// sortProducts orders the view in place. Sorts are stable: products
// comparing equal on the sort key keep their relative input order. Newest
// first is the default when no mode is given.
func sortProducts(products []*domain.Product, mode domain.SortMode) {
	switch mode {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case domain.SortNewest:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
