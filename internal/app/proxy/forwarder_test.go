package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "proxy-test"}},
	})
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type upstreamCapture struct {
	method string
	path   string
	query  string
	body   string
	header http.Header
}

func newProxyRouter(upstream, prefix string) *gin.Engine {
	router := gin.New()
	router.Any("/proxy/*path", NewForwarder("api", upstream, prefix).Handle)
	return router
}

func TestForwardRewritesPathAndQuery(t *testing.T) {
	var captured upstreamCapture
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured = upstreamCapture{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(body),
			header: r.Header.Clone(),
		}
		w.Header().Set("X-Upstream", "api")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"new"}`))
	}))
	defer upstream.Close()

	router := newProxyRouter(upstream.URL, "")
	req, err := http.NewRequest(http.MethodPost,
		"/proxy/requests?ttl=300", strings.NewReader(`{"claim":"age>=18"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer demo-token")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/requests", captured.path)
	assert.Equal(t, "ttl=300", captured.query)
	assert.Equal(t, `{"claim":"age>=18"}`, captured.body)
	assert.Equal(t, "Bearer demo-token", captured.header.Get("Authorization"))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, `{"id":"new"}`, recorder.Body.String())
	assert.Equal(t, "api", recorder.Header().Get("X-Upstream"))
}

func TestForwardPrependsUpstreamPrefix(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer upstream.Close()

	router := newProxyRouter(upstream.URL, "/v1")
	req, err := http.NewRequest(http.MethodGet, "/proxy/sessions/abc", nil)
	require.NoError(t, err)

	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/v1/sessions/abc", gotPath)
}

func TestForwardStripsHopAndCORSHeaders(t *testing.T) {
	var captured http.Header
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.Header().Set("Access-Control-Allow-Origin", "https://upstream.example")
		w.Header().Set("X-Kept", "yes")
	}))
	defer upstream.Close()

	router := newProxyRouter(upstream.URL, "")
	req, err := http.NewRequest(http.MethodGet, "/proxy/health", nil)
	require.NoError(t, err)
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("X-Custom", "carried")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Empty(t, captured.Get("Connection"))
	assert.Equal(t, "carried", captured.Get("X-Custom"))

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"),
		"Upstream CORS headers would duplicate the middleware's own")
	assert.Equal(t, "yes", recorder.Header().Get("X-Kept"))
}

func TestForwardRelaysUpstreamErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"request not found"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	router := newProxyRouter(upstream.URL, "")
	req, err := http.NewRequest(http.MethodGet, "/proxy/requests/missing", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "request not found")
}

func TestForwardUnreachableUpstreamIsBadGateway(t *testing.T) {
	// Grab a port nothing listens on.
	dead := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	router := newProxyRouter(deadURL, "")
	req, err := http.NewRequest(http.MethodGet, "/proxy/anything", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "bad gateway", payload["error"])
	assert.NotEmpty(t, payload["message"])
}
