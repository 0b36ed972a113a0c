// Package homeslice is the Go client for the HomeSlice recipe and pantry
// API. It covers account and profile calls, pantry ingredient CRUD, saved
// recipes, and recipe generation, with the bearer token supplied by a
// TokenSource (normally the AuthStore bound to the identity provider).
package homeslice

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tavmurphy1/homeslice-go/internal/api"
	clienterrors "github.com/tavmurphy1/homeslice-go/internal/errors"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// TokenSource supplies the bearer token attached to protected API calls.
// Implementations return an error wrapping ErrNoToken when no token is
// available.
type TokenSource interface {
	Token() (string, error)
}

// StaticTokenSource is a fixed token, useful for scripted calls against a
// local backend.
type StaticTokenSource string

// Token implements TokenSource.
func (s StaticTokenSource) Token() (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

// Client talks to the HomeSlice backend.
type Client struct {
	baseURL string
	http    *http.Client

	// longHTTP shares http's transport chain but carries no client-level
	// timeout. Recipe generation goes through it: the endpoint routinely
	// outlives the regular request timeout, so only the caller's context
	// bounds it.
	longHTTP *http.Client

	tokens TokenSource
}

// New constructs a Client for the given base URL. The base URL must be
// supplied explicitly; there is no localhost fallback. tokens may be nil
// for a client that only performs unauthenticated calls.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("homeslice: base URL must not be empty")
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()
	return c, nil
}

// NewFromConfig constructs a Client from environment configuration.
func NewFromConfig(cfg Config, tokens TokenSource, opts ...Option) (*Client, error) {
	opts = append([]Option{WithHTTPTimeout(cfg.HTTPTimeout)}, opts...)
	return New(cfg.APIURL, tokens, opts...)
}

// wrapTransport layers the standard client transports over whatever the
// options installed: request-id tagging, metrics, then bearer injection on
// the outside so every request carries the session token.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	base = &requestIDTransport{base: base}
	base = &metricsTransport{base: base}
	c.http.Transport = &bearerTransport{base: base, tokens: c.tokens}
	c.longHTTP = &http.Client{Transport: c.http.Transport}
}

// bearerTransport injects "Authorization: Bearer <token>" when the token
// source has one. Unauthenticated endpoints go through untouched.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens == nil {
		return t.base.RoundTrip(req)
	}
	tok, err := t.tokens.Token()
	if err != nil || tok == "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(cloned)
}

// requestIDTransport tags each outgoing request with a correlation id so
// debug logs can be matched to backend logs.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// requireToken fails fast with ErrNoToken before any network activity when
// the session cannot authenticate a protected call.
func (c *Client) requireToken() error {
	if c.tokens == nil {
		return ErrNoToken
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return err
	}
	if tok == "" {
		return ErrNoToken
	}
	return nil
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateAccount registers a new backend account. Unauthenticated.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*CreateAccountResponse, error) {
	return api.CreateAccount(ctx, c.http, c.baseURL, req)
}

// Login authenticates against the backend's own login endpoint.
// Unauthenticated; a credentials failure carries the server's message.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// SaveProfile upserts the identity-provider user into the backend.
func (c *Client) SaveProfile(ctx context.Context, req ProfileRequest) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	return api.SaveProfile(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Pantry operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPantry fetches the full ingredient set for the authenticated user.
func (c *Client) GetPantry(ctx context.Context) ([]Ingredient, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	return api.ListIngredients(ctx, c.http, c.baseURL)
}

// AddIngredient validates the input and creates the ingredient. The
// returned record carries the server-assigned canonical id.
func (c *Client) AddIngredient(ctx context.Context, in IngredientInput) (*Ingredient, error) {
	if err := types.ValidateIngredientInput(in); err != nil {
		return nil, err
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	return api.CreateIngredient(ctx, c.http, c.baseURL, in)
}

// UpdateIngredient validates the input and replaces the ingredient's
// fields. Last write wins; there is no merge.
func (c *Client) UpdateIngredient(ctx context.Context, id string, in IngredientInput) (*Ingredient, error) {
	if err := types.ValidateIngredientInput(in); err != nil {
		return nil, err
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	return api.UpdateIngredient(ctx, c.http, c.baseURL, id, in)
}

// DeleteIngredient removes the ingredient server-side.
func (c *Client) DeleteIngredient(ctx context.Context, id string) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	return api.DeleteIngredient(ctx, c.http, c.baseURL, id)
}

// --------------------------------------------------------------------
// Recipe operations - delegated to internal/api
// --------------------------------------------------------------------

// ListRecipes fetches all saved recipes for the authenticated user.
func (c *Client) ListRecipes(ctx context.Context) ([]Recipe, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	return api.ListRecipes(ctx, c.http, c.baseURL)
}

// GetRecipe fetches one recipe by id. A malformed id fails before any
// network call.
func (c *Client) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	return api.GetRecipe(ctx, c.http, c.baseURL, id)
}

// DeleteRecipe removes a saved recipe server-side.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	return api.DeleteRecipe(ctx, c.http, c.baseURL, id)
}

// GenerateRecipe submits the given ingredients to the generation endpoint
// and returns the generated recipe. The endpoint is an opaque external AI
// service; one request, one response, no retry. The call is bounded by ctx
// alone, not by the client's HTTP timeout.
func (c *Client) GenerateRecipe(ctx context.Context, ingredients []IngredientInput) (*Recipe, error) {
	if len(ingredients) == 0 {
		return nil, clienterrors.NewValidationError("ingredients", "nothing to cook with")
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	return api.GenerateRecipe(ctx, c.longHTTP, c.baseURL, types.GenerateRecipeRequest{Ingredients: ingredients})
}
