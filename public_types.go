package homeslice

import "github.com/tavmurphy1/homeslice-go/internal/types"

// Public aliases for the shared domain types so SDK users never import
// internal packages.

type (
	Ingredient      = types.Ingredient
	IngredientInput = types.IngredientInput
	Recipe          = types.Recipe
	UserIdentity    = types.UserIdentity
	Session         = types.Session

	CreateAccountRequest  = types.CreateAccountRequest
	CreateAccountResponse = types.CreateAccountResponse
	LoginRequest          = types.LoginRequest
	LoginResponse         = types.LoginResponse
	ProfileRequest        = types.ProfileRequest
)

// Units is the fixed set of measurement units the pantry accepts.
var Units = types.Units
