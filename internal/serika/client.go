// Package serika is the portal's client for the remote serika backend.
// Every operation is a thin pass-through: the backend's JSON body comes
// back decoded on success, and the backend's error comes back unchanged as
// an *APIError on failure. No retries, no circuit breaking - a failed call
// is the page's problem to present.
package serika

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codeberg.org/serika/portal/internal/credentials"
)

const (
	authPath = "/api/auth"
	apiPath  = "/api/openai/v1"
	cdnPath  = "/api/cdn"

	// session-scoped endpoints authenticate with this header
	sessionHeader = "x-auth-token"
)

// which credential an operation needs, declared at the call site rather
// than inferred from the URL - new endpoints cannot silently go out
// unauthenticated
type credentialKind int

const (
	credNone credentialKind = iota
	credSession
	credAPIKey
)

// shared HTTP client for backend calls
// reuses connection pool and timeout configuration across requests
var sharedHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// Client dispatches requests to the serika backend, attaching the
// credential each operation declares. It is cheap to construct per
// request; the pooled transport is shared process-wide.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credentials.Store
}

// creates a client against the given backend origin
// (e.g. https://beta-api.serika.dev)
func NewClient(baseURL string, creds credentials.Store) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: sharedHTTPClient,
		creds:      creds,
	}
}

// returns the credential store this client reads and writes
func (c *Client) Credentials() credentials.Store {
	return c.creds
}

// performs a JSON request against the backend. body and out may be nil.
func (c *Client) do(ctx context.Context, kind credentialKind, method, path string, query url.Values, body, out any) error {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if err := c.attach(req, kind); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// sets the declared credential on the request, failing locally rather
// than letting the backend answer an uninformative 401
func (c *Client) attach(req *http.Request, kind credentialKind) error {
	switch kind {
	case credSession:
		token, ok := c.creds.SessionToken()
		if !ok {
			return ErrNoSessionToken
		}

		req.Header.Set(sessionHeader, token)
	case credAPIKey:
		key, ok := c.creds.APIKey()
		if !ok {
			return ErrNoAPIKey
		}

		req.Header.Set("Authorization", "Bearer "+key)
	}

	return nil
}
