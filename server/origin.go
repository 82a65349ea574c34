package server

import (
	"net/http"
	"net/url"
)

// originValidationMiddleware rejects browser requests from origins outside
// allowed. With an empty allow list only loopback origins pass; "*" allows any.
func originValidationMiddleware(allowed []string) Middleware {
	return func(next http.Handler) http.Handler {
		allowedMap := make(map[string]bool, len(allowed))
		for _, v := range allowed {
			allowedMap[v] = true
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Non-browser requests typically omit Origin; allow.
				next.ServeHTTP(w, r)
				return
			}
			if allowedMap["*"] || allowedMap[origin] || (len(allowedMap) == 0 && isLoopback(origin)) {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "origin not allowed", http.StatusForbidden)
		})
	}
}

func isLoopback(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
