package ui

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"cookbook/internal/domain"
	"cookbook/internal/logger"
)

// fakeBackend serves canned data through both ports so screens can be
// driven without a server.
type fakeBackend struct {
	dishes     []domain.Dish
	categories []domain.Category
	err        error

	deleted []int64
}

func (f *fakeBackend) Dishes(ctx context.Context) ([]domain.Dish, error) {
	return f.dishes, f.err
}

func (f *fakeBackend) DishesByCategory(ctx context.Context, categoryID int64) ([]domain.Dish, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Dish
	for _, d := range f.dishes {
		if d.CategoryID != nil && *d.CategoryID == categoryID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeBackend) Dish(ctx context.Context, id int64) (*domain.Dish, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.dishes {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBackend) CreateDish(ctx context.Context, sub *domain.Submission) (*domain.Dish, error) {
	return &domain.Dish{ID: 100, Name: sub.Data.Name}, f.err
}

func (f *fakeBackend) UpdateDish(ctx context.Context, id int64, sub *domain.Submission) (*domain.Dish, error) {
	return &domain.Dish{ID: id, Name: sub.Data.Name}, f.err
}

func (f *fakeBackend) DeleteDish(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeBackend) Categories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *fakeBackend) Category(ctx context.Context, id int64) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBackend) Ingredients(ctx context.Context) ([]domain.CatalogEntry, error) {
	return []domain.CatalogEntry{{ID: 1, Name: "Flour"}}, f.err
}

func (f *fakeBackend) Units(ctx context.Context) ([]domain.CatalogEntry, error) {
	return []domain.CatalogEntry{{ID: 1, Name: "cups"}}, f.err
}

func setupDeps(t *testing.T, backend *fakeBackend) *deps {
	t.Helper()
	return &deps{
		svc:    backend,
		cats:   backend,
		log:    logger.New(logger.LevelOff, io.Discard),
		base:   "http://localhost:8000",
		width:  80,
		height: 24,
	}
}

func testBackend() *fakeBackend {
	catID := int64(2)
	return &fakeBackend{
		dishes: []domain.Dish{
			{ID: 1, Name: "Pancakes", Favorite: true, CategoryID: &catID},
			{ID: 2, Name: "Toast", CategoryID: &catID},
		},
		categories: []domain.Category{
			{ID: 1, Name: domain.CategoryDinner},
			{ID: 2, Name: domain.CategoryBreakfast},
		},
	}
}

func TestHomeLoadsFavoritesAndCategories(t *testing.T) {
	d := setupDeps(t, testBackend())
	h := newHomeScreen(d)

	msg := loadHome(d, h.token)()
	next, _ := h.Update(msg)
	h = next.(*homeScreen)

	if h.loading {
		t.Fatal("expected loading to finish")
	}
	if len(h.favorites) != 1 || h.favorites[0].Name != "Pancakes" {
		t.Fatalf("unexpected favorites: %+v", h.favorites)
	}
	// Display order is the fixed category order, not the fetch order.
	if len(h.categories) != 2 || h.categories[0].Name != domain.CategoryBreakfast {
		t.Fatalf("unexpected category order: %+v", h.categories)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	d := setupDeps(t, testBackend())
	h := newHomeScreen(d)

	next, _ := h.Update(homeDataMsg{token: "someone-else", dishes: testBackend().dishes})
	h = next.(*homeScreen)

	if !h.loading {
		t.Fatal("expected a stale reply to be ignored")
	}
	if len(h.favorites) != 0 {
		t.Fatalf("stale data applied: %+v", h.favorites)
	}
}

func TestHomeLoadFailure(t *testing.T) {
	backend := testBackend()
	backend.err = errors.New("connection refused")
	d := setupDeps(t, backend)
	h := newHomeScreen(d)

	msg := loadHome(d, h.token)()
	next, _ := h.Update(msg)
	h = next.(*homeScreen)

	if h.err == nil {
		t.Fatal("expected a screen-level error")
	}

	// A retry issues a fresh load with the same token.
	next, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	h = next.(*homeScreen)
	if !h.loading || cmd == nil {
		t.Fatal("expected retry to start a new load")
	}
}

func TestHomeEnterOpensScreens(t *testing.T) {
	d := setupDeps(t, testBackend())
	h := newHomeScreen(d)
	msg := loadHome(d, h.token)()
	next, _ := h.Update(msg)
	h = next.(*homeScreen)

	// Cursor 0 is the favorite; enter opens its detail screen.
	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pushMsg, ok := cmd().(pushScreenMsg)
	if !ok {
		t.Fatalf("expected a push, got %T", cmd())
	}
	det, ok := pushMsg.s.(*detailScreen)
	if !ok {
		t.Fatalf("expected a detail screen, got %T", pushMsg.s)
	}
	if det.dishID != 1 {
		t.Fatalf("expected dish 1, got %d", det.dishID)
	}

	// Below the favorites come the categories.
	next, _ = h.Update(tea.KeyMsg{Type: tea.KeyDown})
	h = next.(*homeScreen)
	_, cmd = h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pushMsg = cmd().(pushScreenMsg)
	cat, ok := pushMsg.s.(*categoryScreen)
	if !ok {
		t.Fatalf("expected a category screen, got %T", pushMsg.s)
	}
	if cat.categoryID != 2 {
		t.Fatalf("expected breakfast (id 2) first, got %d", cat.categoryID)
	}
}

func TestAppStackPushPop(t *testing.T) {
	d := setupDeps(t, testBackend())
	app := NewApp(d.svc, d.cats, d.log, d.base)

	det := newDetailScreen(app.d, 1)
	model, _ := app.Update(pushScreenMsg{s: det})
	app = model.(*App)
	if len(app.stack) != 2 {
		t.Fatalf("expected stack depth 2, got %d", len(app.stack))
	}

	model, _ = app.Update(popScreenMsg{note: "Recipe deleted"})
	app = model.(*App)
	if len(app.stack) != 1 {
		t.Fatalf("expected stack depth 1, got %d", len(app.stack))
	}
	if app.flash != "Recipe deleted" {
		t.Fatalf("expected flash note, got %q", app.flash)
	}

	// Popping the root quits instead of leaving an empty stack.
	_, cmd := app.Update(popScreenMsg{})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit at root, got %T", cmd())
	}
}

func TestDetailDeleteRequiresTypedPhrase(t *testing.T) {
	backend := testBackend()
	d := setupDeps(t, backend)
	s := newDetailScreen(d, 1)

	msg := loadDetail(d, s.token, 1)()
	next, _ := s.Update(msg)
	s = next.(*detailScreen)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	s = next.(*detailScreen)
	if !s.confirming {
		t.Fatal("expected confirmation mode")
	}

	// Enter with the wrong phrase does nothing.
	s.confirm.SetValue("delete pancakes")
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(*detailScreen)
	if s.deleting || cmd != nil {
		t.Fatal("expected mismatched phrase to be rejected")
	}

	s.confirm.SetValue("Delete Pancakes")
	next, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(*detailScreen)
	if !s.deleting || cmd == nil {
		t.Fatal("expected matching phrase to start the delete")
	}
}

func TestEditScreenSavesForm(t *testing.T) {
	d := setupDeps(t, testBackend())
	e := newEditScreen(d, 0)

	msg := loadEdit(d, e.token, 0)()
	next, _ := e.Update(msg)
	e = next.(*editScreen)

	if e.loading {
		t.Fatal("expected form to be ready")
	}

	// Saving an empty form fails validation before any request.
	next, cmd := e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	e = next.(*editScreen)
	if cmd != nil || e.saveErr == "" {
		t.Fatal("expected a validation error, not a request")
	}

	e.form.Name = "Pancakes"
	next, cmd = e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	e = next.(*editScreen)
	if !e.saving || cmd == nil {
		t.Fatal("expected the save to start")
	}

	// A create success pops back with a note.
	next, cmd = e.Update(savedMsg{token: e.token, dish: &domain.Dish{ID: 100}, created: true})
	e = next.(*editScreen)
	popMsg, ok := cmd().(popScreenMsg)
	if !ok {
		t.Fatalf("expected a pop, got %T", cmd())
	}
	if popMsg.note != "Dish created" {
		t.Fatalf("unexpected note %q", popMsg.note)
	}
}

func TestEditScreenSaveFailureKeepsForm(t *testing.T) {
	d := setupDeps(t, testBackend())
	e := newEditScreen(d, 0)

	msg := loadEdit(d, e.token, 0)()
	next, _ := e.Update(msg)
	e = next.(*editScreen)

	e.form.Name = "Pancakes"
	e.form.Description = "fluffy"
	next, _ = e.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	e = next.(*editScreen)

	next, _ = e.Update(saveFailedMsg{token: e.token, err: errors.New("500")})
	e = next.(*editScreen)

	if e.saving {
		t.Fatal("expected saving to stop")
	}
	if e.saveErr == "" {
		t.Fatal("expected the failure to surface")
	}
	if e.form.Name != "Pancakes" || e.form.Description != "fluffy" {
		t.Fatal("expected the form to keep its edits")
	}
}
