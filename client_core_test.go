package homeslice_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	homeslice "github.com/tavmurphy1/homeslice-go"
)

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	t.Parallel()

	// A missing base URL fails closed; there is no localhost fallback.
	if _, err := homeslice.New("", homeslice.StaticTokenSource("t")); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestProtectedCallsAttachBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]homeslice.Ingredient{})
	}))
	defer srv.Close()

	c, err := homeslice.New(srv.URL, homeslice.StaticTokenSource("tok-123"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.GetPantry(context.Background()); err != nil {
		t.Fatalf("GetPantry: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("X-Request-Id missing")
	}
}

func TestNoTokenShortCircuitsBeforeNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c, err := homeslice.New(srv.URL, homeslice.StaticTokenSource(""))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if _, err := c.GetPantry(ctx); !errors.Is(err, homeslice.ErrNoToken) {
		t.Fatalf("GetPantry err = %v, want ErrNoToken", err)
	}
	if _, err := c.ListRecipes(ctx); !errors.Is(err, homeslice.ErrNoToken) {
		t.Fatalf("ListRecipes err = %v, want ErrNoToken", err)
	}
	if err := c.DeleteIngredient(ctx, "abc"); !errors.Is(err, homeslice.ErrNoToken) {
		t.Fatalf("DeleteIngredient err = %v, want ErrNoToken", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("server hit %d times, want 0", hits.Load())
	}
}

func TestValidationFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c, err := homeslice.New(srv.URL, homeslice.StaticTokenSource("tok"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if _, err := c.AddIngredient(ctx, homeslice.IngredientInput{Name: "  ", Quantity: 1, Unit: "cups"}); !homeslice.IsValidation(err) {
		t.Fatalf("AddIngredient err = %v, want validation error", err)
	}
	if _, err := c.UpdateIngredient(ctx, "abc", homeslice.IngredientInput{Name: "Egg", Quantity: -2, Unit: "pieces"}); !homeslice.IsValidation(err) {
		t.Fatalf("UpdateIngredient err = %v, want validation error", err)
	}
	if _, err := c.GetRecipe(ctx, "short"); !homeslice.IsValidation(err) {
		t.Fatalf("GetRecipe err = %v, want validation error", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("server hit %d times, want 0", hits.Load())
	}
}
