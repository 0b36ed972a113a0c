package homeslice

import "github.com/tavmurphy1/homeslice-go/internal/types"

// LoginRoute is where the guard redirects unauthenticated visitors.
const LoginRoute = "/login"

// GuardDecision says what a guarded subtree should do for a given session.
type GuardDecision int

const (
	// GuardPending: auth state is unresolved; render a transitional
	// placeholder. Never the protected children, never a redirect; that
	// avoids a flash-redirect before the provider has reported state.
	GuardPending GuardDecision = iota

	// GuardAllow: render the protected subtree.
	GuardAllow

	// GuardRedirect: send the visitor to the login route.
	GuardRedirect
)

func (d GuardDecision) String() string {
	switch d {
	case GuardPending:
		return "pending"
	case GuardAllow:
		return "allow"
	case GuardRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// GuardResult is the route guard's verdict plus redirect details.
type GuardResult struct {
	Decision GuardDecision
	// Target is set for GuardRedirect.
	Target string
	// ReplaceHistory asks the navigator to replace the current history
	// entry so back-navigation cannot re-enter the guarded area.
	ReplaceHistory bool
}

// Guard is a pure function of the session snapshot; no side effects. A
// signed-in user whose token fetch failed still passes the guard; the
// pages themselves get ErrNoToken from the API layer.
func Guard(s types.Session) GuardResult {
	if s.Loading {
		return GuardResult{Decision: GuardPending}
	}
	if s.User != nil {
		return GuardResult{Decision: GuardAllow}
	}
	return GuardResult{
		Decision:       GuardRedirect,
		Target:         LoginRoute,
		ReplaceHistory: true,
	}
}
