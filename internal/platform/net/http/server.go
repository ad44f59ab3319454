package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"tutorhub/internal/platform/config"
	"tutorhub/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerConfig carries listener settings
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// ServerConfigFrom reads PORT and the timeout knobs under cfg
func ServerConfigFrom(cfg config.Conf) ServerConfig {
	addr := cfg.MayString("ADDR", "")
	if addr == "" {
		addr = ":4000"
		if cfg.Has("PORT") {
			addr = cfg.MustPort("PORT")
		}
	}
	return ServerConfig{
		Addr:              addr,
		ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		ShutdownTimeout:   cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	cfg ServerConfig
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds a server; opts receive the *chi.Mux so callers can mount routes and middleware
func NewServer(cfg ServerConfig, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		cfg: cfg,
		mux: m,
		srv: &stdhttp.Server{
			Addr:              cfg.Addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler exposes the root handler, mostly for tests
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr returns the listening address
func (s *Server) Addr() string { return s.cfg.Addr }

// Run listens until ctx is done, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	log.Info().Dur("timeout", timeout).Msg("http shutting down")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
