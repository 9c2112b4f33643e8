package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"cookbook/internal/domain"
)

// Screen-entry fetch commands. Each screen's required fetches run
// concurrently and the screen renders only once all of them land; the
// first failure cancels the rest and surfaces as a screen-level error.

func loadHome(d *deps, token string) tea.Cmd {
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())

		var dishes []domain.Dish
		var categories []domain.Category

		g.Go(func() error {
			var err error
			dishes, err = d.svc.Dishes(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			categories, err = d.cats.Categories(ctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return loadFailedMsg{token: token, err: err}
		}
		return homeDataMsg{token: token, dishes: dishes, categories: categories}
	}
}

func loadCategory(d *deps, token string, categoryID int64) tea.Cmd {
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())

		var category *domain.Category
		var dishes []domain.Dish

		g.Go(func() error {
			var err error
			category, err = d.cats.Category(ctx, categoryID)
			return err
		})
		g.Go(func() error {
			var err error
			dishes, err = d.svc.DishesByCategory(ctx, categoryID)
			return err
		})

		if err := g.Wait(); err != nil {
			return loadFailedMsg{token: token, err: err}
		}
		return categoryDataMsg{token: token, category: category, dishes: dishes}
	}
}

func loadDetail(d *deps, token string, dishID int64) tea.Cmd {
	return func() tea.Msg {
		dish, err := d.svc.Dish(context.Background(), dishID)
		if err != nil {
			return loadFailedMsg{token: token, err: err}
		}
		return detailDataMsg{token: token, dish: dish}
	}
}

// loadEdit fetches everything one form session needs: the dish being
// edited (skipped when creating) plus the three reference catalogs.
func loadEdit(d *deps, token string, dishID int64) tea.Cmd {
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(context.Background())

		var dish *domain.Dish
		var ingredients, units []domain.CatalogEntry
		var categories []domain.Category

		if dishID != 0 {
			g.Go(func() error {
				var err error
				dish, err = d.svc.Dish(ctx, dishID)
				return err
			})
		}
		g.Go(func() error {
			var err error
			ingredients, err = d.cats.Ingredients(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			units, err = d.cats.Units(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			categories, err = d.cats.Categories(ctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return loadFailedMsg{token: token, err: err}
		}
		return editDataMsg{
			token:       token,
			dish:        dish,
			ingredients: ingredients,
			units:       units,
			categories:  categories,
		}
	}
}

// saveDish submits a built payload. PATCH for existing dishes, POST for
// new ones. The submission is atomic from the client's point of view.
func saveDish(d *deps, token string, dishID int64, sub *domain.Submission) tea.Cmd {
	return func() tea.Msg {
		var (
			dish *domain.Dish
			err  error
		)
		if dishID == 0 {
			dish, err = d.svc.CreateDish(context.Background(), sub)
		} else {
			dish, err = d.svc.UpdateDish(context.Background(), dishID, sub)
		}
		if err != nil {
			return saveFailedMsg{token: token, err: err}
		}
		return savedMsg{token: token, dish: dish, created: dishID == 0}
	}
}

func deleteDish(d *deps, token string, dishID int64) tea.Cmd {
	return func() tea.Msg {
		if err := d.svc.DeleteDish(context.Background(), dishID); err != nil {
			return deleteFailedMsg{token: token, err: err}
		}
		return deletedMsg{token: token}
	}
}
