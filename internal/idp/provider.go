// Package idp wraps the external identity provider. The client never
// implements credential storage or password hashing; it delegates sign-up,
// sign-in, sign-out, token issuance and the auth-state-changed stream to
// the provider behind the Provider interface so the rest of the code can be
// tested against a fake.
package idp

import (
	"context"

	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// AuthState is one auth-state-changed event. User is nil when nobody is
// signed in.
type AuthState struct {
	User *types.UserIdentity
}

// Provider is the identity-provider boundary.
type Provider interface {
	// SignUp registers a new identity and signs it in.
	SignUp(ctx context.Context, email, password string) (*types.UserIdentity, error)
	// SignIn authenticates an existing identity.
	SignIn(ctx context.Context, email, password string) (*types.UserIdentity, error)
	// SignOut clears the current identity.
	SignOut(ctx context.Context) error
	// CurrentUser returns a snapshot of the signed-in identity, nil if none.
	CurrentUser() *types.UserIdentity
	// IDToken returns a bearer token for the current identity.
	IDToken(ctx context.Context) (string, error)
	// Subscribe registers for auth-state-changed events. The current state
	// is delivered immediately, then every subsequent change. The returned
	// cancel function releases the subscription.
	Subscribe() (<-chan AuthState, func())
}
