// ABOUTME: Assembles the HTTP app: store, auth gate, API routes, HTML pages
// ABOUTME: Runs the server and manages graceful shutdown

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/2389/taskdeck/internal/api"
	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/config"
	"github.com/2389/taskdeck/internal/store"
	"github.com/2389/taskdeck/internal/web"
)

// App owns the HTTP server and everything behind it.
type App struct {
	config     *config.Config
	logger     *slog.Logger
	store      *store.SQLiteStore
	httpServer *http.Server
}

// New builds the full request path from config: SQLite store, JWT issuer,
// auth gate, API handlers, and HTML pages, with panic recovery and request
// logging on the outside.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	issuer, err := auth.NewJWTIssuer([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating token issuer: %w", err)
	}

	mux := http.NewServeMux()
	api.New(st, issuer, cfg.Auth.SessionTTL).RegisterRoutes(mux)
	web.NewPages().RegisterRoutes(mux)

	handler := api.Recover(api.RequestLogger(auth.NewGate(issuer).Middleware(mux)))

	app := &App{
		config: cfg,
		logger: logger.With("component", "server"),
		store:  st,
		httpServer: &http.Server{
			Addr:              cfg.Server.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	return app, nil
}

// Handler exposes the assembled handler chain, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails. Returns nil on graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.Server.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening on HTTP address: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		if err := a.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.logger.Info("context canceled, initiating shutdown")
	case serverErr = <-errCh:
		a.logger.Error("server error", "error", serverErr)
	}

	shutdownErr := a.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// gracefulShutdown uses a fresh context since the run context is already
// canceled by the time we get here.
func (a *App) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.Shutdown(ctx)
}

// Shutdown stops the HTTP server and closes the store.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing store: %w", err))
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
