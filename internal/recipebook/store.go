// Package recipebook implements the recipes page logic: the saved-recipe
// list cache, single-recipe detail fetch, deletion, and the generation
// flow that turns the current pantry into a new recipe.
package recipebook

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	clienterrors "github.com/tavmurphy1/homeslice-go/internal/errors"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// API is the slice of the SDK the recipes pages need. Satisfied by
// *homeslice.Client; faked in tests.
type API interface {
	GetPantry(ctx context.Context) ([]types.Ingredient, error)
	ListRecipes(ctx context.Context) ([]types.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*types.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	GenerateRecipe(ctx context.Context, ingredients []types.IngredientInput) (*types.Recipe, error)
}

// Store holds the cached saved-recipe list. A generated recipe is
// prepended without a refetch.
type Store struct {
	api API

	mu      sync.Mutex
	recipes []types.Recipe
}

// New builds an empty store over the given API.
func New(api API) *Store {
	return &Store{api: api}
}

// Refresh fetches all saved recipes and replaces the cache. Failures are
// returned for the page to surface as a user-visible message.
func (s *Store) Refresh(ctx context.Context) error {
	recipes, err := s.api.ListRecipes(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.recipes = recipes
	s.mu.Unlock()
	return nil
}

// Generate fetches the current pantry, keeps only ingredients with a
// quantity strictly greater than zero, and submits them, stripped of
// client-only fields, to the generation endpoint. If nothing remains
// after filtering, a validation error is returned without calling the
// endpoint. The generated recipe is prepended to the cached list.
func (s *Store) Generate(ctx context.Context) (*types.Recipe, error) {
	items, err := s.api.GetPantry(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]types.IngredientInput, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			inputs = append(inputs, it.Input())
		}
	}
	if len(inputs) == 0 {
		return nil, clienterrors.NewValidationError("ingredients", "pantry has no ingredients with a quantity above zero")
	}

	recipe, err := s.api.GenerateRecipe(ctx, inputs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.recipes = append([]types.Recipe{*recipe}, s.recipes...)
	s.mu.Unlock()
	return recipe, nil
}

// Detail fetches one recipe by id. A malformed id is rejected here, before
// any network call, so the caller can tell input errors from server ones.
func (s *Store) Detail(ctx context.Context, id string) (*types.Recipe, error) {
	if err := types.ValidateRecipeID(id); err != nil {
		return nil, err
	}
	return s.api.GetRecipe(ctx, id)
}

// Remove deletes the recipe server-side and drops the local entry only
// after confirmation. Removing an unknown id is a local no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.api.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	log.Debug().Str("recipe", id).Msg("recipe deleted")
	return nil
}

// Recipes returns a copy of the cached list, newest generated first.
func (s *Store) Recipes() []types.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}
