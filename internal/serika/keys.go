package serika

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// All key-management endpoints live under the API path but are
// session-scoped: they manage credentials, they are not authorized by one.

func keyPath(id string, parts ...string) string {
	path := apiPath + "/keys/" + url.PathEscape(id)

	for _, part := range parts {
		path += "/" + part
	}

	return path
}

// lists the user's API keys. Plaintext key values are never included.
func (c *Client) ListKeys(ctx context.Context) ([]APIKey, error) {
	var keys []APIKey

	if err := c.do(ctx, credSession, http.MethodGet, apiPath+"/keys", nil, nil, &keys); err != nil {
		return nil, err
	}

	return keys, nil
}

// creates a named key. The response carries the plaintext key value -
// the only time the backend ever reveals it.
func (c *Client) CreateKey(ctx context.Context, name string) (*APIKey, error) {
	var key APIKey

	err := c.do(ctx, credSession, http.MethodPost, apiPath+"/keys", nil,
		map[string]string{"name": name}, &key)
	if err != nil {
		return nil, err
	}

	return &key, nil
}

// fetches a single key by id
func (c *Client) GetKey(ctx context.Context, id string) (*APIKey, error) {
	var key APIKey

	if err := c.do(ctx, credSession, http.MethodGet, keyPath(id), nil, nil, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

// replaces the key's secret value. Like create, the response carries the
// new plaintext value exactly once.
func (c *Client) RegenerateKey(ctx context.Context, id string) (*APIKey, error) {
	var key APIKey

	if err := c.do(ctx, credSession, http.MethodPost, keyPath(id, "regenerate"), nil, nil, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

// deletes the key. Subsequent lists no longer include it.
func (c *Client) DeleteKey(ctx context.Context, id string) error {
	return c.do(ctx, credSession, http.MethodDelete, keyPath(id), nil, nil, nil)
}

// re-activates a disabled key
func (c *Client) EnableKey(ctx context.Context, id string) error {
	return c.do(ctx, credSession, http.MethodPost, keyPath(id, "enable"), nil, nil, nil)
}

// deactivates the key without deleting it or its usage history
func (c *Client) DisableKey(ctx context.Context, id string) error {
	return c.do(ctx, credSession, http.MethodPut, keyPath(id, "disable"), nil, nil, nil)
}

// replaces the key's permission set
func (c *Client) UpdateKeyPermissions(ctx context.Context, id string, permissions []string) error {
	for _, permission := range permissions {
		if permission != PermissionTextGeneration && permission != PermissionImageGeneration {
			return fmt.Errorf("unknown permission %q", permission)
		}
	}

	return c.do(ctx, credSession, http.MethodPut, keyPath(id, "permissions"), nil,
		map[string][]string{"permissions": permissions}, nil)
}
