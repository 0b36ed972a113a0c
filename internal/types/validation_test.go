package types

import (
	"testing"

	clienterrors "github.com/tavmurphy1/homeslice-go/internal/errors"
)

func TestValidateIngredientInput(t *testing.T) {
	cases := []struct {
		name      string
		in        IngredientInput
		wantField string // empty means valid
	}{
		{"valid", IngredientInput{Name: "Flour", Quantity: 2.5, Unit: "cups"}, ""},
		{"empty name", IngredientInput{Name: "", Quantity: 1, Unit: "cups"}, "name"},
		{"whitespace name", IngredientInput{Name: "   ", Quantity: 1, Unit: "cups"}, "name"},
		{"empty unit", IngredientInput{Name: "Egg", Quantity: 1, Unit: ""}, "unit"},
		{"unknown unit", IngredientInput{Name: "Egg", Quantity: 1, Unit: "dozen"}, "unit"},
		{"zero quantity", IngredientInput{Name: "Egg", Quantity: 0, Unit: "pieces"}, "quantity"},
		{"negative quantity", IngredientInput{Name: "Egg", Quantity: -1, Unit: "pieces"}, "quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateIngredientInput(tc.in)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			ve, ok := err.(*clienterrors.ValidationError)
			if !ok {
				t.Fatalf("error %v (%T), want *ValidationError", err, err)
			}
			if ve.Field != tc.wantField {
				t.Fatalf("field = %q, want %q", ve.Field, tc.wantField)
			}
		})
	}
}

func TestValidateRecipeID(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid lower hex", "64a1f0c2e4b0a1b2c3d4e5f6", false},
		{"valid upper hex", "64A1F0C2E4B0A1B2C3D4E5F6", false},
		{"too short", "short", true},
		{"too long", "64a1f0c2e4b0a1b2c3d4e5f6aa", true},
		{"right length, not hex", "64a1f0c2e4b0a1b2c3d4e5zz", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRecipeID(tc.id)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.id)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.id, err)
			}
		})
	}
}

func TestIsValidUnit(t *testing.T) {
	if !IsValidUnit("cups") {
		t.Fatal("cups should be valid")
	}
	if IsValidUnit("handfuls") {
		t.Fatal("handfuls should not be valid")
	}
}
