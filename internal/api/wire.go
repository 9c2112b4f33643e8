package api

import "cookbook/internal/domain"

// Wire DTOs mirror the server's JSON shapes exactly; mapping into domain
// types happens here and nowhere else.

type dishJSON struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	PrepTime    int                  `json:"prep_time"`
	CookTime    int                  `json:"cook_time"`
	Image       string               `json:"image"`
	IsFavorite  bool                 `json:"is_favorite"`
	Category    *int64               `json:"category"`
	Ingredients []dishIngredientJSON `json:"dishingredient_set"`
	Steps       []stepJSON           `json:"steps"`
}

type dishIngredientJSON struct {
	IngredientDetail *catalogEntryJSON `json:"ingredient_detail"`
	Quantity         string            `json:"quantity"`
	UnitDetail       *catalogEntryJSON `json:"unit_detail"`
}

type stepJSON struct {
	ID          int64  `json:"id"`
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
	Image       string `json:"image"`
}

type catalogEntryJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type categoryJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (w dishJSON) toDomain() domain.Dish {
	d := domain.Dish{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		PrepTime:    w.PrepTime,
		CookTime:    w.CookTime,
		Image:       domain.ImageRef(w.Image),
		Favorite:    w.IsFavorite,
		CategoryID:  w.Category,
	}

	for _, ing := range w.Ingredients {
		d.Ingredients = append(d.Ingredients, domain.DishIngredient{
			Ingredient: ing.IngredientDetail.toRef(),
			Quantity:   ing.Quantity,
			Unit:       ing.UnitDetail.toRef(),
		})
	}

	for _, st := range w.Steps {
		d.Steps = append(d.Steps, domain.Step{
			ID:          st.ID,
			Number:      st.StepNumber,
			Instruction: st.Instruction,
			Image:       domain.ImageRef(st.Image),
		})
	}

	return d
}

func (e *catalogEntryJSON) toRef() domain.CatalogRef {
	if e == nil {
		return domain.RefByName("")
	}
	return domain.RefByID(e.ID, e.Name)
}
