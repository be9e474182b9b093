// README: API server; owns the router and the http.Server lifecycle.
package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"travelsathi/internal/service"
)

const shutdownTimeout = 10 * time.Second

type ServerDeps struct {
	Assistant *service.Assistant
	Router    RouterConfig
}

type Server struct {
	assistant *service.Assistant
	router    RouterConfig
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		assistant: deps.Assistant,
		router:    deps.Router,
	}
}

func (s *Server) Routes() http.Handler {
	return NewRouter(s.assistant, s.router)
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if s.router.Limiter != nil {
		go s.router.Limiter.RunCleanup(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("http: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Printf("http: shutting down")
	return srv.Shutdown(shutdownCtx)
}
