package server

import (
	"net/http"
)

// protocolVersionMiddleware rejects requests announcing an MCP-Protocol-Version
// other than version and echoes the server version on every response.
func protocolVersionMiddleware(version string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := r.Header.Get("MCP-Protocol-Version")
			if requested != "" && requested != version {
				http.Error(w, "invalid MCP-Protocol-Version", http.StatusBadRequest)
				return
			}
			w.Header().Set("MCP-Protocol-Version", version)
			next.ServeHTTP(w, r)
		})
	}
}
