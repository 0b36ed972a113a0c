package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// ListRecipes fetches all saved recipes for the authenticated user.
func ListRecipes(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/recipes", nil)
	if err != nil {
		return nil, err
	}
	var out []types.Recipe
	if err := doJSON(httpClient, req, http.StatusOK, "list recipes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecipe fetches a single recipe. A malformed id is rejected before any
// network call so the caller can tell an input error from a server failure.
func GetRecipe(ctx context.Context, httpClient *http.Client, baseURL, id string) (*types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateRecipeID(id); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/recipes/%s", baseURL, url.PathEscape(id))
	req, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var out types.Recipe
	if err := doJSON(httpClient, req, http.StatusOK, "get recipe", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecipe removes a saved recipe.
func DeleteRecipe(ctx context.Context, httpClient *http.Client, baseURL, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateRecipeID(id); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/recipes/%s", baseURL, url.PathEscape(id))
	req, err := newJSONRequest(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := do(httpClient, req, anyStatus2xx, "delete recipe")
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// GenerateRecipe submits the pantry selection to the generation endpoint.
// Single request/response; no retry, no streaming. The generated record
// must come back with a valid 24-character id or the result is rejected.
func GenerateRecipe(ctx context.Context, httpClient *http.Client, baseURL string, reqBody types.GenerateRecipeRequest) (*types.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/recipes/generate", reqBody)
	if err != nil {
		return nil, err
	}
	var out types.Recipe
	if err := doJSON(httpClient, req, anyStatus2xx, "generate recipe", &out); err != nil {
		return nil, err
	}
	if err := types.ValidateRecipeID(out.ID); err != nil {
		return nil, fmt.Errorf("generate recipe: server returned record without a valid id: %w", err)
	}
	return &out, nil
}
