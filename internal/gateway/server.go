package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

const shutdownTimeout = 20 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	port       string
}

// NewServer creates a new HTTP server. WriteTimeout stays zero so the
// websocket and export downloads are not cut off.
func NewServer(port string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		port: port,
	}
}

// Start serves until ctx is cancelled, then gives in-flight requests 20
// seconds to complete.
func (s *Server) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Server starting on port %s", s.port)
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		log.Printf("Server shutting down: %v", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.httpServer.Close()
			return fmt.Errorf("could not gracefully shutdown server: %w", err)
		}

		log.Println("Server stopped gracefully")
	}

	return nil
}
