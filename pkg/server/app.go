package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/config"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
	applogger "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/postgres"
)

// App encapsulates the application lifecycle: the HTTP server plus the
// infrastructure clients that need an orderly close.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handler    xhttp.Handler
	pg         *postgres.Client
	events     repository.Events
	httpServer *xhttp.Server
}

// New creates the application with all dependencies injected.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	pg *postgres.Client,
	events repository.Events,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		handler: handler,
		pg:      pg,
		events:  events,
	}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	ctx := context.Background()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithRequestMetrics(a.log, time.Second),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown stops the HTTP server first so in-flight requests drain before the
// clients they depend on are closed.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.log.Warn("event publisher close error", applogger.Error(err))
		}
	}

	if a.pg != nil {
		a.pg.Close()
	}

	a.log.Info("shutdown complete")
	return nil
}
