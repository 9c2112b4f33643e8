// Package form implements the in-memory state for one recipe being
// created or edited, and the builder that turns that state into a
// wire-ready submission.
//
// A Form is owned by a single screen instance for the lifetime of the
// edit session and is discarded on exit. Handlers mutate it through
// command methods; the scheduling model is single threaded, so the
// methods do no locking.
package form

import (
	"sort"
	"strconv"

	"cookbook/internal/domain"
	"cookbook/internal/view"
)

// IngredientRow is one editable ingredient line. Quantity stays free
// text; the Ingredient and Unit references are tagged unions that are
// either a catalog pick or free text, never both.
type IngredientRow struct {
	Ingredient domain.CatalogRef
	Quantity   string
	Unit       domain.CatalogRef
}

// StepRow is one editable cooking step. ID is the server id when the
// step was loaded from an existing dish; it is ignored on submission.
type StepRow struct {
	ID          int64
	Number      int
	Instruction string
	Image       domain.ImageRef
}

// Form holds the in-progress dish. Scalar fields are edited directly;
// the ingredient and step lists only change through the command methods
// so the list invariants hold at all times:
//
//	len(ingredients) >= 1
//	len(steps) >= 1
//	step numbers are exactly 1..len(steps) in list order
type Form struct {
	DishID      int64 // 0 when creating
	Name        string
	Description string
	PrepTime    string
	CookTime    string
	Image       domain.ImageRef
	Favorite    bool
	Category    *domain.Category

	ingredients []IngredientRow
	steps       []StepRow
}

// New returns an empty form for creating a dish: one blank ingredient
// row and one blank step numbered 1.
func New() *Form {
	return &Form{
		ingredients: []IngredientRow{blankIngredient()},
		steps:       []StepRow{{Number: 1}},
	}
}

// FromDish builds an edit form from a persisted dish. Steps are sorted
// by step number so display order is stable regardless of the order the
// server returned them in. The category reference is resolved against
// the fetched category catalog; an unknown id leaves the form
// uncategorised.
//
// Image references the server returned as relative paths are resolved
// against base here, at session start. Submission classifies anything
// that is not an absolute URL as a local file pending upload, so a
// relative persisted path left as-is would be re-uploaded (and fail,
// since no such local file exists).
func FromDish(d *domain.Dish, categories []domain.Category, base string) *Form {
	f := &Form{
		DishID:      d.ID,
		Name:        d.Name,
		Description: d.Description,
		PrepTime:    strconv.Itoa(d.PrepTime),
		CookTime:    strconv.Itoa(d.CookTime),
		Image:       resolveImage(base, d.Image),
		Favorite:    d.Favorite,
	}

	if d.CategoryID != nil {
		for _, c := range categories {
			if c.ID == *d.CategoryID {
				cat := c
				f.Category = &cat
				break
			}
		}
	}

	for _, ing := range d.Ingredients {
		f.ingredients = append(f.ingredients, IngredientRow{
			Ingredient: ing.Ingredient,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
		})
	}
	if len(f.ingredients) == 0 {
		f.ingredients = []IngredientRow{blankIngredient()}
	}

	for _, st := range d.Steps {
		f.steps = append(f.steps, StepRow{
			ID:          st.ID,
			Number:      st.Number,
			Instruction: st.Instruction,
			Image:       resolveImage(base, st.Image),
		})
	}
	sort.SliceStable(f.steps, func(i, j int) bool {
		return f.steps[i].Number < f.steps[j].Number
	})
	if len(f.steps) == 0 {
		f.steps = []StepRow{{Number: 1}}
	}
	f.renumber()

	return f
}

// resolveImage rewrites a server-relative image path into the absolute
// URL it is served from, keeping persisted images recognisable as
// remote. Empty and already-absolute references pass through unchanged.
func resolveImage(base string, ref domain.ImageRef) domain.ImageRef {
	return domain.ImageRef(view.ImageURL(base, ref))
}

func blankIngredient() IngredientRow {
	return IngredientRow{
		Ingredient: domain.RefByName(""),
		Unit:       domain.RefByName(""),
	}
}

// Ingredients returns the current ingredient rows. The slice is owned by
// the form; callers read it and mutate through the command methods.
func (f *Form) Ingredients() []IngredientRow { return f.ingredients }

// Steps returns the current step rows, in display order.
func (f *Form) Steps() []StepRow { return f.steps }

// AddIngredient appends a blank ingredient row.
func (f *Form) AddIngredient() {
	f.ingredients = append(f.ingredients, blankIngredient())
}

// RemoveIngredient removes the row at index. Removing the last remaining
// row is a no-op: the list never becomes empty.
func (f *Form) RemoveIngredient(index int) error {
	if index < 0 || index >= len(f.ingredients) {
		return domain.ErrIndexOutOfRange
	}
	if len(f.ingredients) == 1 {
		return nil
	}
	f.ingredients = append(f.ingredients[:index], f.ingredients[index+1:]...)
	return nil
}

// SetIngredientName records free text typed into the name field. Typing
// always reverts the reference to by-name, even if the row previously
// held a catalog pick; a stale id must not shadow the edited text.
func (f *Form) SetIngredientName(index int, name string) error {
	if index < 0 || index >= len(f.ingredients) {
		return domain.ErrIndexOutOfRange
	}
	f.ingredients[index].Ingredient = domain.RefByName(name)
	return nil
}

// SelectIngredient records a catalog pick for the row's ingredient.
func (f *Form) SelectIngredient(index int, entry domain.CatalogEntry) error {
	if index < 0 || index >= len(f.ingredients) {
		return domain.ErrIndexOutOfRange
	}
	f.ingredients[index].Ingredient = domain.RefByID(entry.ID, entry.Name)
	return nil
}

// SetIngredientQuantity records the quantity text as typed, unvalidated.
func (f *Form) SetIngredientQuantity(index int, quantity string) error {
	if index < 0 || index >= len(f.ingredients) {
		return domain.ErrIndexOutOfRange
	}
	f.ingredients[index].Quantity = quantity
	return nil
}

// SetIngredientUnit records free text typed into the unit field,
// reverting any previous catalog pick.
func (f *Form) SetIngredientUnit(index int, name string) error {
	if index < 0 || index >= len(f.ingredients) {
		return domain.ErrIndexOutOfRange
	}
	f.ingredients[index].Unit = domain.RefByName(name)
	return nil
}

// SelectUnit records a catalog pick for the row's unit.
func (f *Form) SelectUnit(index int, entry domain.CatalogEntry) error {
	if index < 0 || index >= len(f.ingredients) {
		return domain.ErrIndexOutOfRange
	}
	f.ingredients[index].Unit = domain.RefByID(entry.ID, entry.Name)
	return nil
}

// AddStep appends a step numbered after the current last one.
func (f *Form) AddStep() {
	f.steps = append(f.steps, StepRow{Number: len(f.steps) + 1})
}

// RemoveStep removes the step at index and renumbers the remainder so
// numbering stays contiguous from 1. Removing the last remaining step is
// a no-op.
func (f *Form) RemoveStep(index int) error {
	if index < 0 || index >= len(f.steps) {
		return domain.ErrIndexOutOfRange
	}
	if len(f.steps) == 1 {
		return nil
	}
	f.steps = append(f.steps[:index], f.steps[index+1:]...)
	f.renumber()
	return nil
}

// SetStepInstruction records the instruction text for the step at index.
func (f *Form) SetStepInstruction(index int, text string) error {
	if index < 0 || index >= len(f.steps) {
		return domain.ErrIndexOutOfRange
	}
	f.steps[index].Instruction = text
	return nil
}

// SetStepImage records a picked image's local handle for the step at
// index. Nothing is uploaded until submission.
func (f *Form) SetStepImage(index int, ref domain.ImageRef) error {
	if index < 0 || index >= len(f.steps) {
		return domain.ErrIndexOutOfRange
	}
	f.steps[index].Image = ref
	return nil
}

// SetImage records a picked main image's local handle.
func (f *Form) SetImage(ref domain.ImageRef) { f.Image = ref }

// ToggleFavorite flips the favorite flag.
func (f *Form) ToggleFavorite() { f.Favorite = !f.Favorite }

// SelectCategory assigns the dish to a category.
func (f *Form) SelectCategory(c domain.Category) { f.Category = &c }

// ClearCategory removes the category assignment.
func (f *Form) ClearCategory() { f.Category = nil }

func (f *Form) renumber() {
	for i := range f.steps {
		f.steps[i].Number = i + 1
	}
}
