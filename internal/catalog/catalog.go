// Package catalog filters the product collection into the orderable view.
package catalog

import (
	"strings"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// All is the category filter value that matches every category.
const All = "Tudo"

// Filter returns the catalog-visible subset of products: active status,
// matching category, and name containing the search term case-insensitively
// or internal code containing the raw term.
func Filter(products []model.Product, search, category string) []model.Product {
	term := strings.ToLower(search)

	var out []model.Product
	for _, p := range products {
		if p.Status != model.ProductStatusActive {
			continue
		}
		if category != "" && category != All && p.Category != category {
			continue
		}

		nameMatch := strings.Contains(strings.ToLower(p.Name), term)
		codeMatch := p.InternalCode != "" && strings.Contains(p.InternalCode, search)
		if !nameMatch && !codeMatch {
			continue
		}

		out = append(out, p)
	}
	return out
}
