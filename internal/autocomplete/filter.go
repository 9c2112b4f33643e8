// Package autocomplete filters reference catalogs for dropdown
// suggestions.
package autocomplete

import (
	"strings"

	"cookbook/internal/domain"
)

// Filter returns the catalog entries whose name contains query,
// case-insensitively, preserving catalog order. An empty query returns
// the full catalog so focusing an empty field shows every option. Pure
// function, no ranking.
func Filter(query string, catalog []domain.CatalogEntry) []domain.CatalogEntry {
	if query == "" {
		return catalog
	}
	q := strings.ToLower(query)
	var out []domain.CatalogEntry
	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}
