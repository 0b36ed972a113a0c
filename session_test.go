package homeslice

import (
	"errors"
	"testing"
	"time"

	"github.com/tavmurphy1/homeslice-go/internal/idp"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

func nextSnapshot(t *testing.T, ch <-chan types.Session) types.Session {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session snapshot")
		return types.Session{}
	}
}

func TestAuthStoreInitialStateIsLoading(t *testing.T) {
	t.Parallel()

	store := NewAuthStore(idp.NewFake())
	s := store.Session()
	if !s.Loading || s.User != nil || s.Token != "" {
		t.Fatalf("initial session = %#v, want loading with no user", s)
	}
	if _, err := store.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("Token during loading = %v, want ErrNoToken", err)
	}
}

func TestAuthStoreResolvesAnonymousOnFirstEvent(t *testing.T) {
	t.Parallel()

	fake := idp.NewFake()
	store := NewAuthStore(fake)
	watch, cancelWatch := store.Watch()
	defer cancelWatch()

	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer store.Close()

	// The provider reports the current (signed-out) state on subscribe.
	s := nextSnapshot(t, watch)
	if s.Loading {
		t.Fatal("loading should resolve after the first event")
	}
	if s.User != nil || s.Token != "" {
		t.Fatalf("anonymous session = %#v", s)
	}
}

func TestAuthStoreAuthenticatedWithToken(t *testing.T) {
	t.Parallel()

	fake := idp.NewFake()
	store := NewAuthStore(fake)
	watch, cancelWatch := store.Watch()
	defer cancelWatch()

	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer store.Close()
	nextSnapshot(t, watch) // initial signed-out state

	fake.SetToken("tok-1", nil)
	fake.EmitSignedIn(&types.UserIdentity{UID: "u1", Email: "a@b.c"})

	s := nextSnapshot(t, watch)
	if s.User == nil || s.User.UID != "u1" || s.Token != "tok-1" || s.Loading {
		t.Fatalf("authenticated session = %#v", s)
	}
	tok, err := store.Token()
	if err != nil || tok != "tok-1" {
		t.Fatalf("Token() = %q, %v", tok, err)
	}
}

func TestAuthStoreTokenFailureKeepsUser(t *testing.T) {
	t.Parallel()

	fake := idp.NewFake()
	store := NewAuthStore(fake)
	watch, cancelWatch := store.Watch()
	defer cancelWatch()

	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer store.Close()
	nextSnapshot(t, watch)

	fake.SetToken("", errors.New("token service down"))
	fake.EmitSignedIn(&types.UserIdentity{UID: "u1", Email: "a@b.c"})

	s := nextSnapshot(t, watch)
	if s.User == nil || s.Token != "" || s.Loading {
		t.Fatalf("no-token session = %#v, want user kept with empty token", s)
	}
	if _, err := store.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("Token() err = %v, want ErrNoToken", err)
	}

	// The guard still lets a token-less user through; the API layer is the
	// one that refuses.
	if g := Guard(s); g.Decision != GuardAllow {
		t.Fatalf("guard decision = %v, want allow", g.Decision)
	}
}

func TestAuthStoreLoadingResolvesExactlyOncePerEvent(t *testing.T) {
	t.Parallel()

	fake := idp.NewFake()
	store := NewAuthStore(fake)
	watch, cancelWatch := store.Watch()
	defer cancelWatch()

	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer store.Close()

	fake.SetToken("tok-1", nil)
	fake.EmitSignedIn(&types.UserIdentity{UID: "u1"})
	fake.EmitSignedOut()
	fake.SetToken("tok-2", nil)
	fake.EmitSignedIn(&types.UserIdentity{UID: "u2"})

	// initial + 3 emitted events; loading must be false in every snapshot
	// and never revert to true.
	for i := 0; i < 4; i++ {
		if s := nextSnapshot(t, watch); s.Loading {
			t.Fatalf("snapshot %d reverted to loading", i)
		}
	}
	final := store.Session()
	if final.User == nil || final.User.UID != "u2" || final.Token != "tok-2" {
		t.Fatalf("final session = %#v", final)
	}
}

func TestAuthStoreSignOutClearsUserAndTokenTogether(t *testing.T) {
	t.Parallel()

	fake := idp.NewFake()
	store := NewAuthStore(fake)
	watch, cancelWatch := store.Watch()
	defer cancelWatch()

	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer store.Close()
	nextSnapshot(t, watch)

	fake.SetToken("tok-1", nil)
	fake.EmitSignedIn(&types.UserIdentity{UID: "u1"})
	nextSnapshot(t, watch)

	fake.EmitSignedOut()
	s := nextSnapshot(t, watch)
	if s.User != nil || s.Token != "" {
		t.Fatalf("signed-out session = %#v", s)
	}
}

func TestAuthStoreStartTwiceFails(t *testing.T) {
	t.Parallel()

	store := NewAuthStore(idp.NewFake())
	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer store.Close()

	if err := store.Start(); err == nil {
		t.Fatal("second Start should fail")
	}
}

func TestAuthStoreCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewAuthStore(idp.NewFake())
	if err := store.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	store.Close()
	store.Close()
}
