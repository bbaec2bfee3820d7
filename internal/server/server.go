// Package server runs shared chess games over websockets. Clients create or
// join a game by id and send moves, spoken phrases, undo and legal-move
// queries; every change is broadcast to all clients of that game.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/lgbarn/chessrules/internal/config"
)

// Server is the HTTP front of a Hub.
type Server struct {
	cfg *config.Config
	hub *Hub
}

// New creates a server for cfg.
func New(cfg *config.Config) *Server {
	return &Server{cfg: cfg, hub: NewHub(cfg)}
}

// Hub returns the server's hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the routes: /ws for game connections and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.ServeWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe serves on cfg.Server.Addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", s.cfg.Server.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
