package ui

import "cookbook/internal/domain"

// Screen-entry load results. Every message carries the token of the
// screen instance that asked for it; replies landing after that screen
// is gone are discarded, never applied to whoever is on top now.

type homeDataMsg struct {
	token      string
	dishes     []domain.Dish
	categories []domain.Category
}

type categoryDataMsg struct {
	token    string
	category *domain.Category
	dishes   []domain.Dish
}

type detailDataMsg struct {
	token string
	dish  *domain.Dish
}

type editDataMsg struct {
	token       string
	dish        *domain.Dish // nil when creating
	ingredients []domain.CatalogEntry
	units       []domain.CatalogEntry
	categories  []domain.Category
}

// loadFailedMsg aborts the whole screen load: one failed fetch means no
// partial render, just the error state with a manual retry.
type loadFailedMsg struct {
	token string
	err   error
}

type savedMsg struct {
	token   string
	dish    *domain.Dish
	created bool
}

type saveFailedMsg struct {
	token string
	err   error
}

type deletedMsg struct{ token string }

type deleteFailedMsg struct {
	token string
	err   error
}

// Navigation messages handled by the root app model.

type pushScreenMsg struct{ s screen }

type popScreenMsg struct{ note string }
