package types

// ------------------------------
// Request payloads
// ------------------------------

// CreateAccountRequest registers a new account with the backend.
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest authenticates against the backend's own login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest upserts the identity-provider user into the backend after
// a successful sign-in.
type ProfileRequest struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// GenerateRecipeRequest carries the pantry selection submitted to the
// recipe generation endpoint. Entries are stripped of client-only fields.
type GenerateRecipeRequest struct {
	Ingredients []IngredientInput `json:"ingredients"`
}
