package types

import "encoding/json"

// The server's raw document shape is not guaranteed to use the client's
// identifier field name: depending on the handler it returns either a
// canonical "id" or the database-assigned "_id". CanonicalID is the single
// normalization boundary: given both candidate fields, it returns the
// canonical identifier, preferring "id" when present.
func CanonicalID(id, altID string) string {
	if id != "" {
		return id
	}
	return altID
}

type ingredientWire struct {
	ID       string  `json:"id"`
	AltID    string  `json:"_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// UnmarshalJSON decodes an ingredient document, normalizing the identifier
// field so callers only ever see ID.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	var w ingredientWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = Ingredient{
		ID:       CanonicalID(w.ID, w.AltID),
		Name:     w.Name,
		Quantity: w.Quantity,
		Unit:     w.Unit,
	}
	return nil
}

type recipeWire struct {
	ID          string            `json:"id"`
	AltID       string            `json:"_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Ingredients []IngredientInput `json:"ingredients"`
	Steps       []string          `json:"steps"`
	PrepTime    int               `json:"prep_time"`
	CookTime    int               `json:"cook_time"`
	Servings    int               `json:"servings"`
	ImageURL    string            `json:"image_url"`
}

// UnmarshalJSON decodes a recipe document with the same identifier
// normalization as Ingredient.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var w recipeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Recipe{
		ID:          CanonicalID(w.ID, w.AltID),
		Title:       w.Title,
		Description: w.Description,
		Ingredients: w.Ingredients,
		Steps:       w.Steps,
		PrepTime:    w.PrepTime,
		CookTime:    w.CookTime,
		Servings:    w.Servings,
		ImageURL:    w.ImageURL,
	}
	return nil
}
