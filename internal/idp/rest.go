package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// RESTProvider talks to an identity-toolkit style REST endpoint
// (accounts:signUp / accounts:signInWithPassword). It keeps the current
// identity and its id token in memory and broadcasts auth-state-changed
// events to subscribers.
type RESTProvider struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu      sync.Mutex
	user    *types.UserIdentity
	idToken string
	subs    map[int]chan AuthState
	nextSub int
}

// NewRESTProvider builds a provider against the given endpoint and API key.
func NewRESTProvider(baseURL, apiKey string) (*RESTProvider, error) {
	if baseURL == "" {
		return nil, errors.New("idp: base URL must not be empty")
	}
	if apiKey == "" {
		return nil, errors.New("idp: API key must not be empty")
	}
	return &RESTProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		subs:    make(map[int]chan AuthState),
	}, nil
}

type credentialsPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type tokenResponse struct {
	IDToken string `json:"idToken"`
	Email   string `json:"email"`
	LocalID string `json:"localId"`
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp registers a new identity and signs it in.
func (p *RESTProvider) SignUp(ctx context.Context, email, password string) (*types.UserIdentity, error) {
	return p.exchange(ctx, "accounts:signUp", email, password)
}

// SignIn authenticates an existing identity.
func (p *RESTProvider) SignIn(ctx context.Context, email, password string) (*types.UserIdentity, error) {
	return p.exchange(ctx, "accounts:signInWithPassword", email, password)
}

func (p *RESTProvider) exchange(ctx context.Context, action, email, password string) (*types.UserIdentity, error) {
	raw, err := json.Marshal(credentialsPayload{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v1/%s?key=%s", p.baseURL, action, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// The provider's descriptive message is surfaced verbatim.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		var pe providerError
		if json.Unmarshal(body, &pe) == nil && pe.Error.Message != "" {
			return nil, errors.New(pe.Error.Message)
		}
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}
	user := &types.UserIdentity{UID: tr.LocalID, Email: tr.Email}

	p.mu.Lock()
	p.user = user
	p.idToken = tr.IDToken
	p.broadcastLocked(AuthState{User: user})
	p.mu.Unlock()

	return user, nil
}

// SignOut clears the current identity and notifies subscribers.
func (p *RESTProvider) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	p.user = nil
	p.idToken = ""
	p.broadcastLocked(AuthState{})
	p.mu.Unlock()
	return nil
}

// CurrentUser returns the signed-in identity, nil if none.
func (p *RESTProvider) CurrentUser() *types.UserIdentity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user
}

// IDToken returns the bearer token for the current identity.
func (p *RESTProvider) IDToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil || p.idToken == "" {
		return "", errors.New("idp: no signed-in user")
	}
	return p.idToken, nil
}

// Subscribe registers for auth-state-changed events. The current state is
// delivered immediately, mirroring the provider SDK's behavior.
func (p *RESTProvider) Subscribe() (<-chan AuthState, func()) {
	ch := make(chan AuthState, 4)

	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = ch
	ch <- AuthState{User: p.user}
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		if sub, ok := p.subs[id]; ok {
			delete(p.subs, id)
			close(sub)
		}
		p.mu.Unlock()
	}
	return ch, cancel
}

func (p *RESTProvider) broadcastLocked(st AuthState) {
	for id, ch := range p.subs {
		select {
		case ch <- st:
		default:
			log.Warn().Int("subscriber", id).Msg("auth-state event dropped, subscriber not draining")
		}
	}
}
