// Package api serves the volume use cases over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bnema/vackup/internal/boundaries/in"
	"github.com/bnema/vackup/internal/boundaries/out"
)

const shutdownTimeout = 10 * time.Second

// Options configures the HTTP server.
type Options struct {
	// Addr is the TCP listen address, used when Socket is empty.
	Addr string
	// Socket is a unix socket path.
	Socket string
	// Limiter throttles requests per client IP. Nil disables throttling.
	Limiter out.RateLimiter
}

// Server exposes the volume service over HTTP.
type Server struct {
	e        *echo.Echo
	svc      in.VolumeService
	inflight *Progress
	opts     Options
	log      zerolog.Logger
}

// NewServer creates the server and registers its routes.
func NewServer(svc in.VolumeService, opts Options, log zerolog.Logger) *Server {
	s := &Server{
		e:        echo.New(),
		svc:      svc,
		inflight: NewProgress(),
		opts:     opts,
		log:      log.With().Str("component", "http").Logger(),
	}
	s.e.HideBanner = true
	s.e.HidePort = true

	s.e.Use(middleware.Recover())
	s.e.Use(requestID())
	s.e.Use(accessLog(s.log))
	s.e.Use(requestContext(s.log))
	if opts.Limiter != nil {
		s.e.Use(rateLimit(opts.Limiter))
	}

	s.e.GET("/volumes", s.listVolumes)
	s.e.GET("/volumes/:volume/containers", s.volumeContainers)
	s.e.POST("/volumes/:volume/export", s.exportVolume)
	s.e.POST("/volumes/:volume/import", s.importVolume)
	s.e.POST("/volumes/:volume/load", s.loadVolume)
	s.e.GET("/progress", s.progress)

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Listen opens the configured listener. A stale unix socket is replaced.
func (s *Server) Listen() (net.Listener, error) {
	if s.opts.Socket != "" {
		if err := os.Remove(s.opts.Socket); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
		ln, err := net.Listen("unix", s.opts.Socket)
		if err != nil {
			return nil, fmt.Errorf("failed to listen on %s: %w", s.opts.Socket, err)
		}
		if err := os.Chmod(s.opts.Socket, 0600); err != nil {
			_ = ln.Close()
			return nil, fmt.Errorf("failed to restrict socket permissions: %w", err)
		}
		return ln, nil
	}

	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return ln, nil
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.e.Listener = ln

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")
		errCh <- s.e.Start("")
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

	s.log.Info().Msg("shutting down HTTP server")
	if err := s.e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}

// Run listens and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
