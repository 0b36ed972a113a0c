package idp

import (
	"context"
	"errors"
	"sync"

	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// Fake is an in-memory Provider for tests. Tests drive the auth-state
// stream directly with EmitSignedIn / EmitSignedOut and control token
// issuance with SetToken.
type Fake struct {
	mu       sync.Mutex
	user     *types.UserIdentity
	token    string
	tokenErr error
	subs     map[int]chan AuthState
	nextSub  int
}

// NewFake returns a signed-out fake provider.
func NewFake() *Fake {
	return &Fake{subs: make(map[int]chan AuthState)}
}

// SetToken configures what IDToken returns for the current identity.
func (f *Fake) SetToken(token string, err error) {
	f.mu.Lock()
	f.token = token
	f.tokenErr = err
	f.mu.Unlock()
}

// EmitSignedIn makes user the current identity and broadcasts the event.
func (f *Fake) EmitSignedIn(user *types.UserIdentity) {
	f.mu.Lock()
	f.user = user
	f.broadcastLocked(AuthState{User: user})
	f.mu.Unlock()
}

// EmitSignedOut clears the identity and broadcasts the event.
func (f *Fake) EmitSignedOut() {
	f.mu.Lock()
	f.user = nil
	f.token = ""
	f.broadcastLocked(AuthState{})
	f.mu.Unlock()
}

// SignUp signs in a synthetic identity derived from the email.
func (f *Fake) SignUp(ctx context.Context, email, password string) (*types.UserIdentity, error) {
	return f.SignIn(ctx, email, password)
}

// SignIn signs in a synthetic identity derived from the email.
func (f *Fake) SignIn(ctx context.Context, email, _ string) (*types.UserIdentity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	user := &types.UserIdentity{UID: "fake-" + email, Email: email}
	f.EmitSignedIn(user)
	return user, nil
}

// SignOut clears the identity.
func (f *Fake) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.EmitSignedOut()
	return nil
}

// CurrentUser returns the signed-in identity, nil if none.
func (f *Fake) CurrentUser() *types.UserIdentity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user
}

// IDToken returns the configured token or error.
func (f *Fake) IDToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	if f.user == nil {
		return "", errors.New("idp: no signed-in user")
	}
	return f.token, nil
}

// Subscribe mirrors the real provider: current state first, then changes.
func (f *Fake) Subscribe() (<-chan AuthState, func()) {
	ch := make(chan AuthState, 16)

	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = ch
	ch <- AuthState{User: f.user}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}

func (f *Fake) broadcastLocked(st AuthState) {
	for _, ch := range f.subs {
		select {
		case ch <- st:
		default:
		}
	}
}

var _ Provider = (*Fake)(nil)
var _ Provider = (*RESTProvider)(nil)
