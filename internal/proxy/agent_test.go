package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TRu-S3/hackmatch-go/internal/logging"
)

func TestHandleAgent_ForwardsBodyAndRelaysResponse(t *testing.T) {
	var forwarded string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		forwarded = string(body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"reply":"here is your team"}`))
	}))
	defer upstream.Close()

	srv := NewServer(":0", upstream.URL, logging.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/agent", strings.NewReader(`{"prompt":"find me a team"}`))
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, `{"prompt":"find me a team"}`, forwarded)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"reply":"here is your team"}`, rec.Body.String())
}

func TestHandleAgent_RelaysUpstreamErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	srv := NewServer(":0", upstream.URL, logging.NewNop())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/agent", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHandleAgent_UnconfiguredEndpoint(t *testing.T) {
	srv := NewServer(":0", "", logging.NewNop())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/agent", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleAgent_UnreachableUpstream(t *testing.T) {
	srv := NewServer(":0", "http://127.0.0.1:1", logging.NewNop())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/agent", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv := NewServer(":0", "", logging.NewNop())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
