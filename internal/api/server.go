// Package api implements the CipherChat HTTP API.
//
// The API exposes the chat repository and the transform library over REST
// for the demo front end:
//
//	GET  /healthz
//	GET  /api/chats?participant={username}
//	POST /api/chats
//	GET  /api/chats/{chatID}/messages?key={key}
//	POST /api/chats/{chatID}/messages
//	GET  /api/profiles/{username}
//	PUT  /api/profiles/{username}
//	POST /api/transform
//
// Responses are JSON. Errors carry a machine-readable code alongside the
// message: {"code": "MALFORMED_INPUT", "error": "..."}.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cipherchat/cipherchat/pkg/chat"
)

// Server serves the CipherChat REST API.
type Server struct {
	svc    *chat.Service
	logger *log.Logger
	router chi.Router
}

// NewServer creates a Server over svc. The logger must not be nil.
func NewServer(svc *chat.Service, logger *log.Logger) *Server {
	s := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/chats", s.handleListChats)
		r.Post("/chats", s.handleCreateChat)
		r.Get("/chats/{chatID}/messages", s.handleListMessages)
		r.Post("/chats/{chatID}/messages", s.handleSendMessage)
		r.Get("/profiles/{username}", s.handleGetProfile)
		r.Put("/profiles/{username}", s.handlePutProfile)
		r.Post("/transform", s.handleTransform)
	})

	s.router = r
	return s
}

// Handler returns the server's HTTP handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the API on addr until ctx is cancelled, then shuts
// down gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
