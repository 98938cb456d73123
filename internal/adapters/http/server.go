package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
)

// writeGrace keeps the connection's write deadline open a little past the
// request timeout so the timeout page itself can be delivered.
const writeGrace = time.Second

// Server owns the listener and the http.Server for the web UI and API.
type Server struct {
	http   *http.Server
	drain  time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	bound net.Addr
	ready chan struct{}
}

// NewServer builds a Server for handler. Nothing is bound until Run.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout + writeGrace,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		drain:  cfg.ShutdownTimeout,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Run listens and serves until ctx is done, then stops accepting
// connections and waits up to the configured shutdown timeout for
// in-flight requests. A clean stop returns nil.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.http.Addr, err)
	}

	s.mu.Lock()
	s.bound = ln.Addr()
	s.mu.Unlock()
	close(s.ready)

	s.logger.Info("http server listening", slog.String("addr", ln.Addr().String()))

	served := make(chan error, 1)
	go func() { served <- s.http.Serve(ln) }()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	return s.shutdown(served)
}

// shutdown drains in-flight requests. A zero drain timeout waits for as
// long as they take.
func (s *Server) shutdown(served <-chan error) error {
	ctx := context.Background()
	if s.drain > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.drain)
		defer cancel()
	}

	s.logger.Info("http server draining", slog.Duration("timeout", s.drain))
	err := s.http.Shutdown(ctx)
	if err != nil {
		_ = s.http.Close()
	}
	<-served

	if err != nil {
		return fmt.Errorf("draining http server: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address once Run is listening, and the configured
// address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != nil {
		return s.bound.String()
	}
	return s.http.Addr
}
