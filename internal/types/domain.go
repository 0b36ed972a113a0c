package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Ingredient is a single pantry item owned by the remote API. The client
// holds a cached copy; ID is always the canonical identifier regardless of
// which field name the server used on the wire.
type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// IngredientInput is the client-supplied portion of an ingredient, used for
// create/update calls and for the recipe generation payload. It never
// carries an ID.
type IngredientInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Input returns the client-supplied fields of i, stripped of the ID.
func (i Ingredient) Input() IngredientInput {
	return IngredientInput{Name: i.Name, Quantity: i.Quantity, Unit: i.Unit}
}

// Recipe is a saved or freshly generated recipe. Server-owned; the client
// caches the list view and fetches single records for the detail view.
type Recipe struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Ingredients []IngredientInput `json:"ingredients"`
	Steps       []string          `json:"steps"`
	PrepTime    int               `json:"prep_time"`
	CookTime    int               `json:"cook_time"`
	Servings    int               `json:"servings"`
	ImageURL    string            `json:"image_url,omitempty"`
}

// UserIdentity is the identity-provider view of the signed-in user.
type UserIdentity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Session is a point-in-time snapshot of the authentication state.
// User and Token are set together on a successful token fetch; a present
// User with an empty Token means the token fetch failed and protected API
// calls will be refused. Loading is true only until the first
// auth-state-changed event has been fully processed.
type Session struct {
	User    *UserIdentity
	Token   string
	Loading bool
}
