// Package api implements the HTTP calls against the HomeSlice backend,
// one file per resource. Functions take the http.Client and base URL from
// the caller; the Authorization header is added by the client's transport.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	clienterrors "github.com/tavmurphy1/homeslice-go/internal/errors"
)

// HTTPClient interface for dependency injection in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// bodySnippetLimit bounds how much of an error response is kept for logs.
const bodySnippetLimit = 512

func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// anyStatus2xx accepts any success status. The backend is not consistent
// about 200 vs 201 vs 204 across handlers, so writes use this instead of an
// exact match.
const anyStatus2xx = 0

// do executes req and enforces the expected status. Any other status is
// turned into a classified error carrying a snippet of the response body;
// transport failures become network errors.
func do(httpClient *http.Client, req *http.Request, wantStatus int, operation string) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, clienterrors.NewNetworkError(operation, err)
	}
	ok := resp.StatusCode == wantStatus
	if wantStatus == anyStatus2xx {
		ok = resp.StatusCode >= 200 && resp.StatusCode < 300
	}
	if !ok {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLimit))
		_ = resp.Body.Close()
		return nil, clienterrors.NewHTTPError(resp.StatusCode, string(snippet), operation)
	}
	return resp, nil
}

// doJSON executes req and decodes the response body into out.
func doJSON(httpClient *http.Client, req *http.Request, wantStatus int, operation string, out any) error {
	resp, err := do(httpClient, req, wantStatus, operation)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return clienterrors.NewNetworkError(operation, err)
	}
	return nil
}
