package view

import (
	"testing"

	"cookbook/internal/domain"
)

func TestFavorites(t *testing.T) {
	dishes := []domain.Dish{
		{ID: 1, Name: "Pancakes", Favorite: true},
		{ID: 2, Name: "Toast"},
		{ID: 3, Name: "Shakshuka", Favorite: true},
	}

	got := Favorites(dishes)
	if len(got) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(got))
	}
	if got[0].Name != "Pancakes" || got[1].Name != "Shakshuka" {
		t.Fatalf("unexpected order: %+v", got)
	}

	if got := Favorites(nil); len(got) != 0 {
		t.Fatalf("expected no favorites, got %d", len(got))
	}
}

func TestOrderedCategories(t *testing.T) {
	fetched := []domain.Category{
		{ID: 5, Name: domain.CategoryDrink},
		{ID: 2, Name: domain.CategoryBreakfast},
		{ID: 9, Name: "SNACK"}, // not a known category
		{ID: 4, Name: domain.CategoryDinner},
	}

	got := OrderedCategories(fetched)
	want := []domain.CategoryName{domain.CategoryBreakfast, domain.CategoryDinner, domain.CategoryDrink}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i, c := range got {
		if c.Name != want[i] {
			t.Fatalf("category %d: expected %s, got %s", i, want[i], c.Name)
		}
	}
}

func TestCategoryTitle(t *testing.T) {
	tests := []struct {
		in   domain.CategoryName
		want string
	}{
		{domain.CategoryBreakfast, "Breakfast"},
		{domain.CategoryDessert, "Dessert"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CategoryTitle(tt.in); got != tt.want {
			t.Fatalf("CategoryTitle(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.0", "2"},
		{"2", "2"},
		{"1.5", "1.5"},
		{"0.50", "0.50"},
		{"to taste", "to taste"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.in); got != tt.want {
			t.Fatalf("FormatQuantity(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestIngredientLine(t *testing.T) {
	tests := []struct {
		name string
		ing  domain.DishIngredient
		want string
	}{
		{
			"full row",
			domain.DishIngredient{
				Ingredient: domain.RefByID(1, "Flour"),
				Quantity:   "2.0",
				Unit:       domain.RefByID(4, "cups"),
			},
			"2 cups Flour",
		},
		{
			"no unit",
			domain.DishIngredient{
				Ingredient: domain.RefByName("Eggs"),
				Quantity:   "3",
				Unit:       domain.RefByName(""),
			},
			"3 Eggs",
		},
		{
			"free-text quantity",
			domain.DishIngredient{
				Ingredient: domain.RefByName("Salt"),
				Quantity:   "to taste",
				Unit:       domain.RefByName(""),
			},
			"to taste Salt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IngredientLine(tt.ing); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestImageURL(t *testing.T) {
	base := "http://localhost:8000"
	tests := []struct {
		name string
		ref  domain.ImageRef
		want string
	}{
		{"absolute kept", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"relative prefixed", "/media/a.jpg", "http://localhost:8000/media/a.jpg"},
		{"relative without slash", "media/a.jpg", "http://localhost:8000/media/a.jpg"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageURL(base, tt.ref); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
