package pantry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tavmurphy1/homeslice-go/internal/types"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	pantry    []types.Ingredient
	pantryErr error
	addFn     func(types.IngredientInput) (*types.Ingredient, error)
	updateFn  func(string, types.IngredientInput) (*types.Ingredient, error)
	deleteErr error
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeAPI) GetPantry(ctx context.Context) ([]types.Ingredient, error) {
	f.record("list")
	return f.pantry, f.pantryErr
}

func (f *fakeAPI) AddIngredient(ctx context.Context, in types.IngredientInput) (*types.Ingredient, error) {
	f.record("add")
	if f.addFn != nil {
		return f.addFn(in)
	}
	return &types.Ingredient{ID: "generated", Name: in.Name, Quantity: in.Quantity, Unit: in.Unit}, nil
}

func (f *fakeAPI) UpdateIngredient(ctx context.Context, id string, in types.IngredientInput) (*types.Ingredient, error) {
	f.record("update")
	if f.updateFn != nil {
		return f.updateFn(id, in)
	}
	return &types.Ingredient{ID: id, Name: in.Name, Quantity: in.Quantity, Unit: in.Unit}, nil
}

func (f *fakeAPI) DeleteIngredient(ctx context.Context, id string) error {
	f.record("delete")
	return f.deleteErr
}

func TestAddAppendsServerRecordWithCanonicalID(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		addFn: func(in types.IngredientInput) (*types.Ingredient, error) {
			// Server assigns the id; the _id/id normalization happened at
			// the decode boundary, so the record arrives canonical.
			return &types.Ingredient{ID: "abc123", Name: in.Name, Quantity: in.Quantity, Unit: in.Unit}, nil
		},
	}
	s := New(api)

	created, err := s.Add(context.Background(), types.IngredientInput{Name: "Flour", Quantity: 2.5, Unit: "cups"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID != "abc123" {
		t.Fatalf("created id = %q, want abc123", created.ID)
	}

	items := s.Items()
	if len(items) != 1 || items[0].ID != "abc123" {
		t.Fatalf("unexpected cache %#v", items)
	}
}

func TestAddFailureLeavesNoPlaceholder(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		addFn: func(types.IngredientInput) (*types.Ingredient, error) {
			return nil, errors.New("server unavailable")
		},
	}
	s := New(api)

	if _, err := s.Add(context.Background(), types.IngredientInput{Name: "Flour", Quantity: 1, Unit: "cups"}); err == nil {
		t.Fatal("expected error")
	}
	if got := s.Items(); len(got) != 0 {
		t.Fatalf("cache should be empty after failed create, got %#v", got)
	}
}

func TestRemoveUnknownIDIsLocalNoop(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pantry: []types.Ingredient{{ID: "a", Name: "Egg", Quantity: 6, Unit: "pieces"}}}
	s := New(api)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	// Server confirms the delete even though the cache never held the id.
	if err := s.Remove(context.Background(), "not-in-cache"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	items := s.Items()
	if len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("cache changed for unknown id: %#v", items)
	}
}

func TestRefreshFailureKeepsStaleCache(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pantry: []types.Ingredient{{ID: "a", Name: "Egg", Quantity: 6, Unit: "pieces"}}}
	s := New(api)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	api.mu.Lock()
	api.pantryErr = errors.New("boom")
	api.mu.Unlock()

	if err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if items := s.Items(); len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("stale cache not preserved: %#v", items)
	}
}

func TestLoadedTracksFirstSuccessfulRefresh(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{pantryErr: errors.New("boom")}
	s := New(api)

	if s.Loaded() {
		t.Fatal("Loaded true before any refresh")
	}
	if err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	// A failed first load is not a loaded-and-empty pantry.
	if s.Loaded() {
		t.Fatal("Loaded true after failed first refresh")
	}

	api.mu.Lock()
	api.pantryErr = nil
	api.mu.Unlock()
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !s.Loaded() {
		t.Fatal("Loaded false after successful refresh")
	}

	api.mu.Lock()
	api.pantryErr = errors.New("boom")
	api.mu.Unlock()
	if err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !s.Loaded() {
		t.Fatal("Loaded reverted by a later failed refresh")
	}
}

func TestCreateUpdateDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		addFn: func(in types.IngredientInput) (*types.Ingredient, error) {
			return &types.Ingredient{ID: "rt1", Name: in.Name, Quantity: in.Quantity, Unit: in.Unit}, nil
		},
	}
	s := New(api)
	ctx := context.Background()

	if _, err := s.Add(ctx, types.IngredientInput{Name: "Milk", Quantity: 1, Unit: "liters"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Update(ctx, "rt1", types.IngredientInput{Name: "Milk", Quantity: 2, Unit: "liters"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.Remove(ctx, "rt1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	for _, it := range s.Items() {
		if it.ID == "rt1" {
			t.Fatalf("cache still holds deleted id: %#v", s.Items())
		}
	}

	want := []string{"add", "update", "delete"}
	got := api.Calls()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %v, want %v", got, want)
		}
	}
}

// Two in-flight updates for the same id resolve independently; the cache
// reflects whichever response arrives last, not request-issue order.
func TestConcurrentUpdatesLastResolvedWins(t *testing.T) {
	t.Parallel()

	release := map[float64]chan struct{}{
		1: make(chan struct{}),
		2: make(chan struct{}),
	}
	api := &fakeAPI{
		pantry: []types.Ingredient{{ID: "x", Name: "Sugar", Quantity: 5, Unit: "cups"}},
		updateFn: func(id string, in types.IngredientInput) (*types.Ingredient, error) {
			<-release[in.Quantity]
			return &types.Ingredient{ID: id, Name: in.Name, Quantity: in.Quantity, Unit: in.Unit}, nil
		},
	}
	s := New(api)
	ctx := context.Background()
	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	var wg sync.WaitGroup
	done := make(map[float64]chan struct{})
	for _, q := range []float64{1, 2} {
		q := q
		done[q] = make(chan struct{})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Update(ctx, "x", types.IngredientInput{Name: "Sugar", Quantity: q, Unit: "cups"}); err != nil {
				t.Errorf("Update(%v): %v", q, err)
			}
			close(done[q])
		}()
	}

	// Issue order was 1,2 (both already in flight); resolve 2 first, 1 last.
	close(release[2])
	<-done[2]
	close(release[1])
	<-done[1]
	wg.Wait()

	items := s.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("last-resolved response should win, cache = %#v", items)
	}
}
