package domain

import "context"

// DishService provides dish reads and writes. The production
// implementation is the REST client; tests use in-memory fakes.
type DishService interface {
	Dishes(ctx context.Context) ([]Dish, error)
	DishesByCategory(ctx context.Context, categoryID int64) ([]Dish, error)
	Dish(ctx context.Context, id int64) (*Dish, error)
	CreateDish(ctx context.Context, sub *Submission) (*Dish, error)
	UpdateDish(ctx context.Context, id int64, sub *Submission) (*Dish, error)
	DeleteDish(ctx context.Context, id int64) error
}

// CatalogSource provides the shared read-only reference catalogs. The
// form never mutates them; new names go to the server inside a
// submission and the server creates catalog entries as needed.
type CatalogSource interface {
	Categories(ctx context.Context) ([]Category, error)
	Category(ctx context.Context, id int64) (*Category, error)
	Ingredients(ctx context.Context) ([]CatalogEntry, error)
	Units(ctx context.Context) ([]CatalogEntry, error)
}

// AttachmentLoader turns a local image handle into an uploadable binary
// part. Remote references never reach a loader.
type AttachmentLoader interface {
	Load(path string) (*Attachment, error)
}
