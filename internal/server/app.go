// Package server initializes and runs the store server.
// It opens the configured backend, serves it over gRPC, exposes Prometheus
// metrics, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/savebank/internal/logging"
	"github.com/dmitrijs2005/savebank/internal/server/config"
	"github.com/dmitrijs2005/savebank/internal/server/repositories/repomanager"

	gs "github.com/dmitrijs2005/savebank/internal/server/grpc"
)

var (
	openBackend = repomanager.Open

	notifySignals = signal.Notify
	stopSignals   = signal.Stop
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	backend *repomanager.Backend
	metrics *gs.Metrics
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	b, err := openBackend(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("backend init error: %w", err)
	}

	logger.Info(ctx, "Backend ready", "backend", c.Backend)

	return &App{config: c, logger: logger, backend: b, metrics: gs.NewMetrics()}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	notifySignals(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer stopSignals(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.backend.Store, app.metrics)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewMetricsServer(app.config.EndpointAddrMetrics, app.logger, app.metrics)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is canceled, a signal arrives, or a listener fails,
// then releases the backend.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrMetrics != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.backend.Close(); err != nil {
		app.logger.Error(ctx, "backend close error", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
