package playground

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/serika/portal/internal/credentials"
	"codeberg.org/serika/portal/internal/serika"
)

func newTestRouter(t *testing.T, backend http.Handler, apiKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	factory := func(c *gin.Context) *serika.Client {
		store := credentials.NewMemoryStore()
		if apiKey != "" {
			store.SetAPIKey(apiKey)
		}
		return serika.NewClient(srv.URL, store)
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/portal/v1"), factory)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestChatHandlerRejectsEmptyMessages(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for invalid input")
	})

	router := newTestRouter(t, backend, "sk-test")
	w := postJSON(router, "/api/portal/v1/playground/chat", `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/portal/v1/playground/chat", `{"messages":[{"role":"user","content":"   "}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlerWithoutKeyIsUnauthorized(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called without an api key")
	})

	router := newTestRouter(t, backend, "")
	w := postJSON(router, "/api/portal/v1/playground/chat", `{"messages":[{"role":"user","content":"hi"}],"character_id":"c1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestImagesHandlerRequiresPrompt(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for invalid input")
	})

	router := newTestRouter(t, backend, "sk-test")
	w := postJSON(router, "/api/portal/v1/playground/images", `{"prompt":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImagesHandlerForwardsBearer(t *testing.T) {
	var gotAuth, gotSession string
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotSession = r.Header.Get("x-auth-token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"created":1756339200,"data":[{"url":"https://cdn.example/img.png"}]}`))
	})

	router := newTestRouter(t, backend, "sk-test")
	w := postJSON(router, "/api/portal/v1/playground/images", `{"prompt":"a lighthouse at dusk"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Empty(t, gotSession)
}

func TestUpstreamModelErrorPassesThrough(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"billing setup required","type":"billing_error","code":"no_billing"}}`))
	})

	router := newTestRouter(t, backend, "sk-test")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portal/v1/playground/models", nil))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "billing setup required")
}
