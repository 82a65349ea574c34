package server

import (
	"context"
	"net/http"

	"github.com/viant/jsonrpc/transport/server/http/sse"
	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

const (
	sseURI        = "/sse"
	sseMessageURI = "/message"
	streamableURI = "/mcp"
)

type httpServer struct {
	useStreamableHTTP bool
	addr              string
	allowedOrigins    []string
}

// UseStreamableHTTP sets whether to use streamableHTTP or SSE for the HTTP handler.
func (s *Server) UseStreamableHTTP(flag bool) {
	s.useStreamableHTTP = flag
}

// HTTP creates and returns an HTTP server exposing the SSE and streamable transports.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		// Default bind only to localhost to reduce DNS rebinding risk
		addr = "127.0.0.1:5000"
	}
	sseHandler := sse.New(s.NewHandler,
		sse.WithURI(sseURI),
		sse.WithMessageURI(sseMessageURI),
	)
	streamingHandler := streamable.New(s.NewHandler,
		streamable.WithURI(streamableURI),
	)
	middlewares := []Middleware{
		rejectionLogMiddleware(s.logger),
		protocolVersionMiddleware(s.protocolVersion),
		originValidationMiddleware(s.allowedOrigins),
	}
	sseChain := Chain(sseHandler, middlewares...)
	streamChain := Chain(streamingHandler, middlewares...)

	mux := http.NewServeMux()
	mux.Handle(sseURI, sseChain)
	mux.Handle(sseMessageURI, sseChain)
	mux.Handle(streamableURI, streamChain)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		target := sseURI
		if s.useStreamableHTTP {
			target = streamableURI
		}
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
