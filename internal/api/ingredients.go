package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// ListIngredients fetches the caller's full pantry.
func ListIngredients(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/ingredients", nil)
	if err != nil {
		return nil, err
	}
	var out []types.Ingredient
	if err := doJSON(httpClient, req, http.StatusOK, "list ingredients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIngredient adds one ingredient and returns the server record with
// its canonical id.
func CreateIngredient(ctx context.Context, httpClient *http.Client, baseURL string, in types.IngredientInput) (*types.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/ingredients", in)
	if err != nil {
		return nil, err
	}
	var out types.Ingredient
	if err := doJSON(httpClient, req, anyStatus2xx, "create ingredient", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIngredient replaces the ingredient's fields and returns the server
// record. Last write wins at the field level; there is no merge.
func UpdateIngredient(ctx context.Context, httpClient *http.Client, baseURL, id string, in types.IngredientInput) (*types.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/ingredients/%s", baseURL, url.PathEscape(id))
	req, err := newJSONRequest(ctx, http.MethodPut, u, in)
	if err != nil {
		return nil, err
	}
	var out types.Ingredient
	if err := doJSON(httpClient, req, anyStatus2xx, "update ingredient", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIngredient removes the ingredient. The backend replies 2xx with no
// required body.
func DeleteIngredient(ctx context.Context, httpClient *http.Client, baseURL, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/ingredients/%s", baseURL, url.PathEscape(id))
	req, err := newJSONRequest(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := do(httpClient, req, anyStatus2xx, "delete ingredient")
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
