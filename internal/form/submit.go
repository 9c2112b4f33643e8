package form

import (
	"strconv"
	"strings"

	"cookbook/internal/domain"
)

// BuildSubmission serialises the form into the payload the API expects.
// It fails with a ValidationError before any network work when required
// fields are missing; everything else is defaulted, never rejected:
//
//   - name must be non-empty after trimming
//   - prep/cook time default to "0" when blank or unparseable
//   - quantities default to "0" when blank, otherwise pass through as typed
//   - steps are renumbered by position, instruction defaulted to ""
//   - only local (not yet uploaded) images become attachments; persisted
//     URLs are omitted because they are unchanged on the server
//
// A failed submission leaves the form untouched; the caller retries with
// the same edits.
func (f *Form) BuildSubmission() (*domain.Submission, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "dish name required"}
	}

	data := domain.SubmissionData{
		Name:        f.Name,
		PrepTime:    minutesOrZero(f.PrepTime),
		CookTime:    minutesOrZero(f.CookTime),
		Description: f.Description,
		Favorite:    f.Favorite,
	}

	if f.Category != nil {
		id := strconv.FormatInt(f.Category.ID, 10)
		data.CategoryID = &id
	}

	data.Ingredients = make([]domain.SubmissionIngredient, len(f.ingredients))
	for i, row := range f.ingredients {
		si := domain.SubmissionIngredient{Quantity: quantityOrZero(row.Quantity)}

		if id, ok := row.Ingredient.ByID(); ok {
			si.IngredientID = strconv.FormatInt(id, 10)
		} else {
			name := row.Ingredient.Name()
			si.IngredientName = &name
		}

		if id, ok := row.Unit.ByID(); ok {
			si.UnitID = strconv.FormatInt(id, 10)
		} else {
			name := row.Unit.Name()
			si.UnitName = &name
		}

		data.Ingredients[i] = si
	}

	data.Steps = make([]domain.SubmissionStep, len(f.steps))
	for i, st := range f.steps {
		data.Steps[i] = domain.SubmissionStep{
			StepNumber:  i + 1,
			Instruction: st.Instruction,
		}
	}

	sub := &domain.Submission{Data: data}

	if !f.Image.IsZero() && !f.Image.Remote() {
		sub.Image = f.Image
	}
	for i, st := range f.steps {
		if st.Image.IsZero() || st.Image.Remote() {
			continue
		}
		if sub.StepImages == nil {
			sub.StepImages = make(map[int]domain.ImageRef)
		}
		sub.StepImages[i] = st.Image
	}

	return sub, nil
}

// minutesOrZero normalises a minutes field. Anything that does not parse
// as a non-negative integer becomes "0".
func minutesOrZero(s string) string {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return "0"
	}
	return strconv.FormatInt(n, 10)
}

// quantityOrZero defaults a blank quantity to "0". Non-blank text passes
// through untouched: quantity is free text end to end ("to taste" is a
// valid value as far as the client knows).
func quantityOrZero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return s
}
