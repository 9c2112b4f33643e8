// Package domain defines the core types and interfaces for the cookbook
// client. All other packages depend on domain; domain depends on nothing.
package domain

import "strings"

// Dish is a persisted recipe record with metadata, ingredients, and steps.
type Dish struct {
	ID          int64
	Name        string
	Description string
	PrepTime    int // minutes
	CookTime    int // minutes
	Image       ImageRef
	Favorite    bool
	CategoryID  *int64 // nil when uncategorised
	Ingredients []DishIngredient
	Steps       []Step
}

// TotalTime is prep plus cook time in minutes. Always derived, never stored.
func (d *Dish) TotalTime() int { return d.PrepTime + d.CookTime }

// Category is a server-maintained dish grouping. Read-only from the client.
type Category struct {
	ID   int64
	Name CategoryName
}

// CategoryName is one of a fixed enumerated set. Unrecognised values fall
// back to placeholder presentation rather than failing.
type CategoryName string

const (
	CategoryBreakfast CategoryName = "BREAKFAST"
	CategoryLunch     CategoryName = "LUNCH"
	CategoryDinner    CategoryName = "DINNER"
	CategoryDessert   CategoryName = "DESSERT"
	CategoryDrink     CategoryName = "DRINK"
)

// KnownCategories lists the fixed enumeration in display order.
func KnownCategories() []CategoryName {
	return []CategoryName{
		CategoryBreakfast,
		CategoryLunch,
		CategoryDinner,
		CategoryDessert,
		CategoryDrink,
	}
}

// DishIngredient is one ingredient line on a dish. Quantity stays free
// text end to end; the server validates it, not the client.
type DishIngredient struct {
	Ingredient CatalogRef
	Quantity   string
	Unit       CatalogRef
}

// Step is a single cooking step. Number is 1-based and contiguous within
// a dish's step list.
type Step struct {
	ID          int64 // server id, 0 when not yet persisted
	Number      int
	Instruction string
	Image       ImageRef
}

// CatalogEntry is one row of the ingredient or unit reference catalog.
type CatalogEntry struct {
	ID   int64
	Name string
}

// CatalogRef identifies an ingredient or unit either by catalog id or by
// free text. Exactly one side is ever populated; the constructors make a
// both-or-neither state unrepresentable.
type CatalogRef struct {
	id   int64
	name string
	byID bool
}

// RefByID references an existing catalog entry. The name is kept for
// display only and is never sent alongside the id.
func RefByID(id int64, name string) CatalogRef {
	return CatalogRef{id: id, name: name, byID: true}
}

// RefByName references a catalog entry by free text. The server creates
// the entry if the name is new. An empty name is a valid (blank) reference.
func RefByName(name string) CatalogRef {
	return CatalogRef{name: name}
}

// ByID returns the catalog id and whether this reference carries one.
func (r CatalogRef) ByID() (int64, bool) { return r.id, r.byID }

// Name returns the display text of the reference.
func (r CatalogRef) Name() string { return r.name }

// ImageRef is either an absolute URL to server-stored image data or a
// local file handle pending upload. The empty string means no image.
type ImageRef string

// Remote reports whether the reference is already persisted on the
// server. Only absolute network URLs count; everything else is a local
// file that still needs uploading.
func (r ImageRef) Remote() bool {
	s := string(r)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsZero reports whether no image is referenced.
func (r ImageRef) IsZero() bool { return r == "" }

// Attachment is a binary part ready to be written into a multipart
// request body.
type Attachment struct {
	Filename string
	MIME     string
	Data     []byte
}
