package serika

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"codeberg.org/serika/portal/internal/credentials"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authenticates against the backend auth service. A successful login
// stores the returned session token in the credential store.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse

	err := c.do(ctx, credNone, http.MethodPost, authPath+"/login", nil, loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Token != "" {
		c.creds.SetSessionToken(resp.Token)
	}

	return &resp, nil
}

// clears both stored credentials. Purely local - the backend keeps no
// revocable session state for this client.
func (c *Client) Logout() {
	credentials.ClearAll(c.creds)
}

// fetches the signed-in user's profile
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User

	if err := c.do(ctx, credSession, http.MethodGet, authPath+"/user", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// uploads a new avatar for the user via the CDN path. Multipart PUT,
// session-authenticated, field name "avatar".
func (c *Client) UploadAvatar(ctx context.Context, userID, filename string, avatar io.Reader) (*AvatarUploadResponse, error) {
	token, ok := c.creds.SessionToken()
	if !ok {
		return nil, ErrNoSessionToken
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("avatar", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}

		if _, err := io.Copy(part, avatar); err != nil {
			pw.CloseWithError(err)
			return
		}

		pw.CloseWithError(writer.Close())
	}()

	endpoint := fmt.Sprintf("%s%s/user/%s", c.baseURL, cdnPath, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(sessionHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(resp)
	}

	var uploaded AvatarUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &uploaded, nil
}
