package idp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRESTProviderSignInAndEvents(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/accounts:signInWithPassword":
			var body credentialsPayload
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Password != "hunter2" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
				return
			}
			_ = json.NewEncoder(w).Encode(tokenResponse{IDToken: "tok-1", Email: body.Email, LocalID: "uid-1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p, err := NewRESTProvider(srv.URL, "test-key")
	if err != nil {
		t.Fatalf("NewRESTProvider: %v", err)
	}

	events, cancel := p.Subscribe()
	defer cancel()

	// Current (signed-out) state is delivered immediately.
	if st := <-events; st.User != nil {
		t.Fatalf("initial state = %#v, want signed out", st)
	}

	user, err := p.SignIn(context.Background(), "a@b.c", "hunter2")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if user.UID != "uid-1" || user.Email != "a@b.c" {
		t.Fatalf("user = %#v", user)
	}

	if st := <-events; st.User == nil || st.User.UID != "uid-1" {
		t.Fatalf("signed-in event = %#v", st)
	}

	tok, err := p.IDToken(context.Background())
	if err != nil || tok != "tok-1" {
		t.Fatalf("IDToken = %q, %v", tok, err)
	}

	if err := p.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if st := <-events; st.User != nil {
		t.Fatalf("signed-out event = %#v", st)
	}
	if _, err := p.IDToken(context.Background()); err == nil {
		t.Fatal("IDToken after sign-out should fail")
	}
}

func TestRESTProviderSurfacesProviderMessageVerbatim(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"EMAIL_NOT_FOUND"}}`))
	}))
	defer srv.Close()

	p, err := NewRESTProvider(srv.URL, "test-key")
	if err != nil {
		t.Fatalf("NewRESTProvider: %v", err)
	}

	_, err = p.SignIn(context.Background(), "nobody@b.c", "x")
	if err == nil || err.Error() != "EMAIL_NOT_FOUND" {
		t.Fatalf("err = %v, want provider message verbatim", err)
	}
}

func TestRESTProviderRejectsEmptyConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewRESTProvider("", "key"); err == nil {
		t.Fatal("empty base URL should be rejected")
	}
	if _, err := NewRESTProvider("http://idp.example", ""); err == nil {
		t.Fatal("empty API key should be rejected")
	}
}
