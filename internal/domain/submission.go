package domain

// Submission is the wire-ready form of an edited dish: one JSON metadata
// block plus the local images that still need uploading. Images already
// persisted on the server are omitted; they are unchanged there.
type Submission struct {
	Data       SubmissionData
	Image      ImageRef          // local main image handle, empty when none
	StepImages map[int]ImageRef  // step index -> local image handle
}

// SubmissionData is the JSON metadata block sent as the "data" part.
// Field names and types match what the API expects: times and quantities
// travel as strings, ids as strings, and the id/name pairs are mutually
// exclusive per line.
type SubmissionData struct {
	Name        string                 `json:"name"`
	PrepTime    string                 `json:"prep_time"`
	CookTime    string                 `json:"cook_time"`
	Description string                 `json:"description"`
	Favorite    bool                   `json:"is_favorite"`
	CategoryID  *string                `json:"category_id"`
	Ingredients []SubmissionIngredient `json:"dishingredient_set"`
	Steps       []SubmissionStep       `json:"steps"`
}

// SubmissionIngredient carries exactly one of IngredientID/IngredientName
// and exactly one of UnitID/UnitName. The name sides are pointers so a
// blank free-text name is still emitted rather than dropped.
type SubmissionIngredient struct {
	Quantity       string  `json:"quantity"`
	IngredientID   string  `json:"ingredient_id,omitempty"`
	IngredientName *string `json:"ingredient_name,omitempty"`
	UnitID         string  `json:"unit_id,omitempty"`
	UnitName       *string `json:"unit_name,omitempty"`
}

// SubmissionStep is one step in the metadata block. StepNumber is the
// list position at build time, not any stored number.
type SubmissionStep struct {
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
}
