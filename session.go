package homeslice

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tavmurphy1/homeslice-go/internal/idp"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// AuthStore owns the client's authentication state. It subscribes to the
// identity provider's auth-state-changed stream and keeps a Session
// snapshot {user, token, loading} current:
//
//   - event with an identity: a bearer token is fetched from the provider;
//     on success user and token are set together, on failure the user is
//     kept with an empty token and the failure is logged, not fatal.
//   - event with no identity: user and token are cleared together.
//   - loading starts true and flips to false when the first event has been
//     fully processed, token fetch included. It never reverts to true.
//
// Token acquisition is not retried; the next attempt happens on the next
// identity-change event (for example a re-login). The store implements
// TokenSource, so protected Client calls fail fast with ErrNoToken while
// the user is signed out or the token fetch failed.
type AuthStore struct {
	provider idp.Provider

	mu       sync.Mutex
	session  types.Session
	started  bool
	watchers map[int]chan types.Session
	nextID   int

	cancelSub func()
	stop      context.CancelFunc
	done      chan struct{}
}

// NewAuthStore builds a store over the given provider. The store is inert
// until Start is called; the initial session is {nil, "", loading=true}.
func NewAuthStore(provider idp.Provider) *AuthStore {
	return &AuthStore{
		provider: provider,
		session:  types.Session{Loading: true},
		watchers: make(map[int]chan types.Session),
	}
}

// Start subscribes to the provider's event stream. Exactly one active
// subscription per store lifetime; calling Start twice is an error.
func (s *AuthStore) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("auth store already started")
	}
	s.started = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	events, cancelSub := s.provider.Subscribe()

	s.stop = cancel
	s.cancelSub = cancelSub
	s.done = make(chan struct{})

	go s.run(ctx, events)
	return nil
}

// Close unsubscribes from the provider and waits for the event loop to
// drain. Safe to call multiple times.
func (s *AuthStore) Close() {
	s.mu.Lock()
	if !s.started || s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, cancelSub, done := s.stop, s.cancelSub, s.done
	s.stop = nil
	s.mu.Unlock()

	cancelSub()
	stop()
	<-done
}

func (s *AuthStore) run(ctx context.Context, events <-chan idp.AuthState) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-events:
			if !ok {
				return
			}
			s.handleEvent(ctx, st)
		}
	}
}

func (s *AuthStore) handleEvent(ctx context.Context, st idp.AuthState) {
	next := types.Session{}
	if st.User != nil {
		next.User = st.User
		tok, err := s.provider.IDToken(ctx)
		if err != nil {
			// Signed in but no usable token. API calls will refuse with
			// ErrNoToken until the next identity-change event.
			tokenRefreshTotal.WithLabelValues("failure").Inc()
			log.Error().Err(err).Str("uid", st.User.UID).Msg("token acquisition failed")
		} else {
			tokenRefreshTotal.WithLabelValues("success").Inc()
			next.Token = tok
		}
	} else {
		log.Debug().Msg("auth state changed: signed out")
	}

	s.mu.Lock()
	s.session = next
	for _, ch := range s.watchers {
		select {
		case ch <- next:
		default:
		}
	}
	s.mu.Unlock()
}

// Session returns the current session snapshot.
func (s *AuthStore) Session() types.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token implements TokenSource. It returns ErrNoToken while auth state is
// unresolved, nobody is signed in, or the token fetch failed.
func (s *AuthStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Loading || s.session.Token == "" {
		return "", ErrNoToken
	}
	return s.session.Token, nil
}

// Watch registers for session snapshots, one per processed provider event.
// The cancel function releases the watcher. Slow watchers miss snapshots
// rather than blocking the event loop.
func (s *AuthStore) Watch() (<-chan types.Session, func()) {
	ch := make(chan types.Session, 16)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if w, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(w)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}
