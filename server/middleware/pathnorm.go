package middleware

import (
	"net/http"
	"strings"
)

// NormalizePath returns a middleware that collapses runs of consecutive
// slashes in the request path ("//v1///audio" becomes "/v1/audio") before
// routing. Clients behind proxies occasionally produce doubled slashes.
func NormalizePath() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "//") {
				r.URL.Path = collapseSlashes(r.URL.Path)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func collapseSlashes(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	prevSlash := false
	for i := 0; i < len(p); i++ {
		if p[i] == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(p[i])
	}
	return b.String()
}
