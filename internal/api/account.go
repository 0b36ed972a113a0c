package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	clienterrors "github.com/tavmurphy1/homeslice-go/internal/errors"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

// CreateAccount registers a new account. The backend reports failure either
// through a non-2xx status or through a 2xx body carrying message/error, so
// both paths are folded into the returned error.
func CreateAccount(ctx context.Context, httpClient *http.Client, baseURL string, in types.CreateAccountRequest) (*types.CreateAccountResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/user/create-account", in)
	if err != nil {
		return nil, err
	}
	var out types.CreateAccountResponse
	if err := doJSON(httpClient, req, anyStatus2xx, "create account", &out); err != nil {
		return nil, err
	}
	if out.AccountID() == "" {
		msg := out.FailureMessage()
		if msg == "" {
			msg = "server did not return an account id"
		}
		return nil, fmt.Errorf("create account: %s", msg)
	}
	return &out, nil
}

// Login authenticates against the backend's login endpoint. A 2xx body with
// success=false is a credentials failure; its message is surfaced verbatim.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, in types.LoginRequest) (*types.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/user/login", in)
	if err != nil {
		return nil, err
	}
	var out types.LoginResponse
	if err := doJSON(httpClient, req, anyStatus2xx, "login", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "login failed"
		}
		return nil, &clienterrors.ClassifiedError{
			Category:   clienterrors.Irrecoverable,
			StatusCode: http.StatusUnauthorized,
			Underlying: errors.New(msg),
		}
	}
	return &out, nil
}

// SaveProfile upserts the identity-provider user into the backend. Called
// once after each successful sign-in; requires the bearer token.
func SaveProfile(ctx context.Context, httpClient *http.Client, baseURL string, in types.ProfileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/user/profile", in)
	if err != nil {
		return err
	}
	var out types.ProfileResponse
	return doJSON(httpClient, req, anyStatus2xx, "save profile", &out)
}
