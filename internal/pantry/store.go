// Package pantry implements the pantry page logic: an ordered local cache
// of the user's ingredients kept consistent with the server through
// optimistic updates after each confirmed CRUD call.
package pantry

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// API is the slice of the SDK the pantry page needs. Satisfied by
// *homeslice.Client; faked in tests.
type API interface {
	GetPantry(ctx context.Context) ([]types.Ingredient, error)
	AddIngredient(ctx context.Context, in types.IngredientInput) (*types.Ingredient, error)
	UpdateIngredient(ctx context.Context, id string, in types.IngredientInput) (*types.Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) error
}

// Store holds the cached ingredient list in arrival order. Every entry
// corresponds to a server-side record; a failed create never leaves a
// client-only placeholder behind. The mutex makes interleaved response
// application safe: two racing updates both land, last response wins.
type Store struct {
	api API

	mu     sync.Mutex
	items  []types.Ingredient
	loaded bool
}

// New builds an empty store over the given API.
func New(api API) *Store {
	return &Store{api: api}
}

// Refresh fetches the full ingredient set and replaces the cache
// wholesale. On failure the cache keeps its previous contents (stale but
// present, or empty if this was the first load) and the error is returned
// for the page to surface.
func (s *Store) Refresh(ctx context.Context) error {
	items, err := s.api.GetPantry(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("pantry refresh failed, keeping cached list")
		return err
	}
	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Add creates the ingredient server-side and appends the server record,
// with its canonical id, to the cache. Validation failures and missing
// tokens come back from the SDK before any network call.
func (s *Store) Add(ctx context.Context, in types.IngredientInput) (*types.Ingredient, error) {
	created, err := s.api.AddIngredient(ctx, in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()
	return created, nil
}

// Update replaces the ingredient's fields server-side and then replaces
// the cache entry matching the returned record's id. Field-level
// last-write-wins: whichever response arrives last is what the cache
// shows, regardless of request-issue order.
func (s *Store) Update(ctx context.Context, id string, in types.IngredientInput) (*types.Ingredient, error) {
	updated, err := s.api.UpdateIngredient(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Remove deletes the ingredient server-side first and drops the local
// entry only after confirmation, so a failed delete never shows the item
// as gone. Removing an id the cache doesn't hold is a local no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.api.DeleteIngredient(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the cached list in arrival order.
func (s *Store) Items() []types.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Ingredient, len(s.items))
	copy(out, s.items)
	return out
}

// Loaded reports whether at least one refresh has succeeded.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
