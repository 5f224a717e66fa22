package serika

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/serika/portal/internal/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// records the auth headers of every request the fake backend sees
type recordedRequest struct {
	method       string
	path         string
	sessionToken string
	bearer       string
}

func newRecordingBackend(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var seen []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, recordedRequest{
			method:       r.Method,
			path:         r.URL.Path,
			sessionToken: r.Header.Get("x-auth-token"),
			bearer:       r.Header.Get("Authorization"),
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck // test fixture
	}))

	t.Cleanup(server.Close)
	return server, &seen
}

func newTestClient(backend *httptest.Server) (*Client, *credentials.MemoryStore) {
	store := credentials.NewMemoryStore()
	return NewClient(backend.URL, store), store
}

func TestSessionScopedCalls_AttachSessionHeaderOnly(t *testing.T) {
	backend, seen := newRecordingBackend(t, http.StatusOK, `[]`)
	client, store := newTestClient(backend)

	store.SetSessionToken("session-abc")
	store.SetAPIKey("sk-should-not-appear")

	ctx := context.Background()

	_, err := client.ListKeys(ctx)
	require.NoError(t, err)

	_, err = client.Usage(ctx, UsageOptions{})
	// usage decodes into a struct; the empty-array body fails, which is fine here
	_ = err

	require.NotEmpty(t, *seen)

	for _, req := range *seen {
		assert.Equal(t, "session-abc", req.sessionToken,
			"%s %s must carry the session token", req.method, req.path)
		assert.Empty(t, req.bearer,
			"%s %s must never carry the bearer API key", req.method, req.path)
	}
}

func TestKeyManagementCalls_AreSessionScoped(t *testing.T) {
	backend, seen := newRecordingBackend(t, http.StatusOK, `{}`)
	client, store := newTestClient(backend)

	store.SetSessionToken("session-abc")
	store.SetAPIKey("sk-should-not-appear")

	ctx := context.Background()

	_, _ = client.CreateKey(ctx, "My Key")
	_, _ = client.GetKey(ctx, "k1")
	_, _ = client.RegenerateKey(ctx, "k1")
	require.NoError(t, client.EnableKey(ctx, "k1"))
	require.NoError(t, client.DisableKey(ctx, "k1"))
	require.NoError(t, client.DeleteKey(ctx, "k1"))
	require.NoError(t, client.UpdateKeyPermissions(ctx, "k1", []string{PermissionImageGeneration}))

	require.Len(t, *seen, 7)

	for _, req := range *seen {
		assert.Equal(t, "session-abc", req.sessionToken, "%s %s", req.method, req.path)
		assert.Empty(t, req.bearer, "%s %s", req.method, req.path)
	}
}

func TestGenerationCalls_AttachBearerOnly(t *testing.T) {
	backend, seen := newRecordingBackend(t, http.StatusOK, `{"object":"list","data":[]}`)
	client, store := newTestClient(backend)

	store.SetSessionToken("session-should-not-appear")
	store.SetAPIKey("sk-xyz")

	ctx := context.Background()

	_, err := client.Models(ctx)
	require.NoError(t, err)

	_, _ = client.Characters(ctx)
	_, _ = client.GenerateImage(ctx, ImageRequest{Prompt: "a lighthouse"})
	_, _ = client.ChatCompletion(ctx, ChatRequest{
		Messages:    []ChatMessage{{Role: "user", Content: "hi"}},
		CharacterID: "char-1",
	})

	require.NotEmpty(t, *seen)

	for _, req := range *seen {
		assert.Equal(t, "Bearer sk-xyz", req.bearer,
			"%s %s must carry the bearer API key", req.method, req.path)
		assert.Empty(t, req.sessionToken,
			"%s %s must never carry the session token", req.method, req.path)
	}
}

func TestChatViaSDK_UsesBearerAndOpenAIPath(t *testing.T) {
	var gotPath, gotBearer, gotSession string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBearer = r.Header.Get("Authorization")
		gotSession = r.Header.Get("x-auth-token")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","model":"serika-1",` + //nolint:errcheck
			`"choices":[{"index":0,"message":{"role":"assistant","content":"hello"},"finish_reason":"stop"}],` +
			`"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
	}))
	defer server.Close()

	client, store := newTestClient(server)
	store.SetAPIKey("sk-xyz")
	store.SetSessionToken("session-should-not-appear")

	resp, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
		Model:    "serika-1",
	})

	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "hello", resp.Choices[0].Message.Content)
	assert.Equal(t, 5, resp.Usage.TotalTokens)
	assert.Equal(t, "/api/openai/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-xyz", gotBearer)
	assert.Empty(t, gotSession)
}

func TestMissingCredential_FailsBeforeAnyNetworkIO(t *testing.T) {
	backend, seen := newRecordingBackend(t, http.StatusOK, `{}`)
	client, _ := newTestClient(backend)

	ctx := context.Background()

	_, err := client.ListKeys(ctx)
	assert.ErrorIs(t, err, ErrNoSessionToken)

	_, err = client.Models(ctx)
	assert.ErrorIs(t, err, ErrNoAPIKey)

	assert.Empty(t, *seen, "no request should reach the backend without a credential")
}

func TestLogin_StoresSessionToken(t *testing.T) {
	backend, seen := newRecordingBackend(t, http.StatusOK,
		`{"token":"fresh-session","user":{"_id":"u1","username":"ada","email":"ada@example.com"}}`)
	client, store := newTestClient(backend)

	resp, err := client.Login(context.Background(), "ada@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "fresh-session", resp.Token)
	assert.Equal(t, "ada", resp.User.Username)

	token, ok := store.SessionToken()
	require.True(t, ok)
	assert.Equal(t, "fresh-session", token)

	// login itself carries no credential
	require.Len(t, *seen, 1)
	assert.Empty(t, (*seen)[0].sessionToken)
	assert.Empty(t, (*seen)[0].bearer)
}

func TestLogout_ClearsBothCredentials(t *testing.T) {
	backend, _ := newRecordingBackend(t, http.StatusOK, `{}`)
	client, store := newTestClient(backend)

	store.SetSessionToken("session-abc")
	store.SetAPIKey("sk-xyz")

	client.Logout()

	_, ok := store.SessionToken()
	assert.False(t, ok)
	_, ok = store.APIKey()
	assert.False(t, ok)
}

func TestBackendError_OpenAIShapePassesThroughUnchanged(t *testing.T) {
	backend, _ := newRecordingBackend(t, http.StatusForbidden,
		`{"error":{"message":"key lacks image_generation permission","type":"permission_error","code":"insufficient_permissions"}}`)
	client, store := newTestClient(backend)
	store.SetAPIKey("sk-xyz")

	_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.HTTPStatus())
	assert.Equal(t, "key lacks image_generation permission", apiErr.Error())
	assert.Equal(t, "permission_error", apiErr.Type)
	assert.Equal(t, "insufficient_permissions", apiErr.ErrorCode())
}

func TestBackendError_MsgShapePassesThroughUnchanged(t *testing.T) {
	backend, _ := newRecordingBackend(t, http.StatusPaymentRequired, `{"msg":"Failed to setup billing"}`)
	client, store := newTestClient(backend)
	store.SetSessionToken("session-abc")

	_, err := client.SetupBilling(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.HTTPStatus())
	assert.Equal(t, "Failed to setup billing", apiErr.Error())
}

func TestBackendError_NumericCodeIsStringified(t *testing.T) {
	backend, _ := newRecordingBackend(t, http.StatusTooManyRequests,
		`{"error":{"message":"slow down","type":"rate_limit","code":429}}`)
	client, store := newTestClient(backend)
	store.SetAPIKey("sk-xyz")

	_, err := client.Models(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "429", apiErr.ErrorCode())
}

func TestUsage_SendsDateRangeQuery(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UsageResponse{}) //nolint:errcheck // test fixture
	}))
	defer server.Close()

	client, store := newTestClient(server)
	store.SetSessionToken("session-abc")

	_, err := client.Usage(context.Background(), UsageOptions{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-28",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-01"}, gotQuery["startDate"])
	assert.Equal(t, []string{"2026-08-28"}, gotQuery["endDate"])
}

func TestUpdateKeyPermissions_RejectsUnknownPermission(t *testing.T) {
	backend, seen := newRecordingBackend(t, http.StatusOK, `{}`)
	client, store := newTestClient(backend)
	store.SetSessionToken("session-abc")

	err := client.UpdateKeyPermissions(context.Background(), "k1", []string{"root_access"})

	assert.Error(t, err)
	assert.Empty(t, *seen)
}
