package homeslice_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	homeslice "github.com/tavmurphy1/homeslice-go"
)

func TestClient_IngredientCRUD(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/ingredients":
			// The backend's raw shape uses _id; the client must expose id.
			_, _ = w.Write([]byte(`[{"_id":"aaa","name":"Egg","quantity":6,"unit":"pieces"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/ingredients":
			var in homeslice.IngredientInput
			_ = json.NewDecoder(r.Body).Decode(&in)
			_, _ = w.Write([]byte(`{"_id":"abc123","name":"` + in.Name + `","quantity":2.5,"unit":"cups"}`))
		case r.Method == http.MethodPut && r.URL.Path == "/ingredients/abc123":
			_, _ = w.Write([]byte(`{"id":"abc123","name":"Flour","quantity":3,"unit":"cups"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/ingredients/abc123":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	}))
	defer srv.Close()

	c, err := homeslice.New(srv.URL, homeslice.StaticTokenSource("tok"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	list, err := c.GetPantry(ctx)
	if err != nil {
		t.Fatalf("GetPantry: %v", err)
	}
	if len(list) != 1 || list[0].ID != "aaa" {
		t.Fatalf("unexpected pantry %#v", list)
	}

	created, err := c.AddIngredient(ctx, homeslice.IngredientInput{Name: "Flour", Quantity: 2.5, Unit: "cups"})
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}
	if created.ID != "abc123" {
		t.Fatalf("created id = %q, want abc123 (normalized from _id)", created.ID)
	}

	updated, err := c.UpdateIngredient(ctx, "abc123", homeslice.IngredientInput{Name: "Flour", Quantity: 3, Unit: "cups"})
	if err != nil {
		t.Fatalf("UpdateIngredient: %v", err)
	}
	if updated.Quantity != 3 {
		t.Fatalf("updated quantity = %v", updated.Quantity)
	}

	if err := c.DeleteIngredient(ctx, "abc123"); err != nil {
		t.Fatalf("DeleteIngredient: %v", err)
	}

	// Deleting a record the server no longer has maps to ErrNotFound.
	err = c.DeleteIngredient(ctx, "gone")
	if !errors.Is(err, homeslice.ErrNotFound) {
		t.Fatalf("delete unknown err = %v, want ErrNotFound", err)
	}
}

func TestClient_PantryServerErrorIsClassified(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := homeslice.New(srv.URL, homeslice.StaticTokenSource("tok"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.GetPantry(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if homeslice.IsIrrecoverable(err) {
		t.Fatalf("5xx should classify as recoverable: %v", err)
	}
}
