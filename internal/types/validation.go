package types

import (
	"strings"

	clienterrors "github.com/tavmurphy1/homeslice-go/internal/errors"
)

// Units is the fixed set of measurement units the pantry accepts.
var Units = []string{
	"pieces",
	"cups",
	"tablespoons",
	"teaspoons",
	"grams",
	"kilograms",
	"ounces",
	"pounds",
	"milliliters",
	"liters",
}

// IsValidUnit reports whether unit is one of the accepted measurement units.
func IsValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// ValidateIngredientInput checks an ingredient before any network call:
// trimmed name non-empty, unit from the fixed set, quantity strictly
// positive. Quantity zero is rejected; the pantry may still contain
// zero-quantity items the server already holds.
func ValidateIngredientInput(in IngredientInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return clienterrors.NewValidationError("name", "must not be empty")
	}
	if in.Unit == "" {
		return clienterrors.NewValidationError("unit", "must not be empty")
	}
	if !IsValidUnit(in.Unit) {
		return clienterrors.NewValidationError("unit", "unknown unit "+in.Unit)
	}
	if in.Quantity <= 0 {
		return clienterrors.NewValidationError("quantity", "must be greater than zero")
	}
	return nil
}

// recipeIDLength matches the server's 24-character object identifiers.
const recipeIDLength = 24

// ValidateRecipeID rejects identifiers that cannot possibly name a server
// record: anything other than 24 hex characters. Called before any network
// request so a malformed id is distinguishable from a server failure.
func ValidateRecipeID(id string) error {
	if len(id) != recipeIDLength {
		return clienterrors.NewValidationError("id", "must be a 24-character identifier")
	}
	for _, c := range id {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return clienterrors.NewValidationError("id", "must be hexadecimal")
		}
	}
	return nil
}
