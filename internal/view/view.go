// Package view holds the read-only projections behind the listing and
// detail screens. Everything here is a pure function of fetched data.
package view

import (
	"strconv"
	"strings"

	"cookbook/internal/domain"
)

// Favorites filters a dish set down to favorites, preserving the
// server-returned order. An empty result is the "no favorites" UI path,
// not an error.
func Favorites(dishes []domain.Dish) []domain.Dish {
	var out []domain.Dish
	for _, d := range dishes {
		if d.Favorite {
			out = append(out, d)
		}
	}
	return out
}

// OrderedCategories maps the fetched categories onto the fixed display
// order (breakfast, lunch, dinner, dessert, drink). Unknown or missing
// categories are dropped from the display, never an error.
func OrderedCategories(categories []domain.Category) []domain.Category {
	var out []domain.Category
	for _, name := range domain.KnownCategories() {
		for _, c := range categories {
			if c.Name == name {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// CategoryTitle renders a category name for display: first letter upper,
// rest lower ("BREAKFAST" -> "Breakfast"). Empty in, empty out.
func CategoryTitle(name domain.CategoryName) string {
	s := string(name)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// FormatQuantity collapses a numeric quantity with zero fractional part
// to its integer form ("2.0" -> "2"); everything else, including
// non-numeric text, passes through unchanged. Fails open: never an error.
func FormatQuantity(quantity string) string {
	n, err := strconv.ParseFloat(strings.TrimSpace(quantity), 64)
	if err != nil {
		return quantity
	}
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return quantity
}

// IngredientLine renders one detail-screen ingredient row:
// "<quantity> <unit> <name>" with blank parts collapsed.
func IngredientLine(ing domain.DishIngredient) string {
	parts := make([]string, 0, 3)
	if q := FormatQuantity(ing.Quantity); q != "" {
		parts = append(parts, q)
	}
	if u := ing.Unit.Name(); u != "" {
		parts = append(parts, u)
	}
	if n := ing.Ingredient.Name(); n != "" {
		parts = append(parts, n)
	}
	return strings.Join(parts, " ")
}

// ImageURL resolves an image reference for display against the API base
// URL. References the server returned as absolute URLs are used as-is;
// only relative paths get the base prefixed.
func ImageURL(base string, ref domain.ImageRef) string {
	if ref.IsZero() {
		return ""
	}
	if ref.Remote() {
		return string(ref)
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(string(ref), "/")
}
