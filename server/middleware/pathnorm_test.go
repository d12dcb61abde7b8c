package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/v1/audio/transcriptions", "/v1/audio/transcriptions"},
		{"//v1/audio/transcriptions", "/v1/audio/transcriptions"},
		{"/v1//audio///transcriptions", "/v1/audio/transcriptions"},
		{"/", "/"},
		{"//", "/"},
		{"/health//", "/health/"},
	}

	for _, tt := range tests {
		var got string
		h := NormalizePath()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Path
		}))

		req := httptest.NewRequest(http.MethodGet, "http://example.test"+tt.in, nil)
		h.ServeHTTP(httptest.NewRecorder(), req)

		if got != tt.want {
			t.Errorf("NormalizePath(%q) routed %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseSlashes(t *testing.T) {
	if got := collapseSlashes("///a//b/c//"); got != "/a/b/c/" {
		t.Errorf("collapseSlashes = %q", got)
	}
}
