package proxy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TRu-S3/hackmatch-go/internal/logging"
)

func TestExtractOGP(t *testing.T) {
	tests := []struct {
		name string
		html string
		want OGP
	}{
		{
			name: "full og tags",
			html: `<html><head>
				<title>fallback</title>
				<meta property="og:title" content="Spring Hackathon" />
				<meta property="og:description" content="48h of building" />
				<meta property="og:image" content="https://img.example/cover.png" />
			</head></html>`,
			want: OGP{Title: "Spring Hackathon", Description: "48h of building", Image: "https://img.example/cover.png"},
		},
		{
			name: "title fallback",
			html: `<html><head><title>  Plain Page </title></head><body></body></html>`,
			want: OGP{Title: "Plain Page"},
		},
		{
			name: "twitter fallbacks",
			html: `<html><head>
				<meta name="twitter:description" content="tw desc">
				<meta name="twitter:image" content="https://img.example/tw.png">
			</head></html>`,
			want: OGP{Description: "tw desc", Image: "https://img.example/tw.png"},
		},
		{
			name: "og wins over twitter for description",
			html: `<html><head>
				<meta property="og:description" content="og desc">
				<meta name="twitter:description" content="tw desc">
			</head></html>`,
			want: OGP{Description: "og desc"},
		},
		{
			name: "empty document",
			html: ``,
			want: OGP{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractOGP(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleOGP(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><meta property="og:title" content="Team Finder"></head></html>`))
	}))
	defer page.Close()

	srv := NewServer(":0", "", logging.NewNop())
	handler := srv.Routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ogp?url="+page.URL, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got OGP
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Team Finder", got.Title)
	assert.Equal(t, page.URL, got.URL)
}

func TestHandleOGP_RejectsBadInput(t *testing.T) {
	srv := NewServer(":0", "", logging.NewNop())
	handler := srv.Routes()

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing url", target: "/api/ogp"},
		{name: "unsupported scheme", target: "/api/ogp?url=ftp%3A%2F%2Fexample.com"},
		{name: "not a url", target: "/api/ogp?url=%3A%2F%2F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleOGP_UpstreamFailure(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer page.Close()

	srv := NewServer(":0", "", logging.NewNop())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ogp?url="+page.URL, nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
