package server

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/savebank/internal/server/config"
	"github.com/dmitrijs2005/savebank/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/savebank/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_BackendError(t *testing.T) {
	orig := openBackend
	t.Cleanup(func() { openBackend = orig })
	openBackend = func(ctx context.Context, cfg *config.Config) (*repomanager.Backend, error) {
		return nil, errors.New("no db")
	}

	_, err := NewApp(context.Background(), &config.Config{Backend: config.BackendPostgres})
	require.ErrorContains(t, err, "backend init error")
}

func TestRun_StopsAndClosesBackend(t *testing.T) {
	orig := openBackend
	t.Cleanup(func() { openBackend = orig })

	closed := make(chan struct{})
	openBackend = func(ctx context.Context, cfg *config.Config) (*repomanager.Backend, error) {
		return &repomanager.Backend{Store: memory.New(), Close: func() error {
			close(closed)
			return nil
		}}, nil
	}

	cfg := &config.Config{Backend: config.BackendMemory, EndpointAddrGRPC: "127.0.0.1:0", LogLevel: "error"}
	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	select {
	case <-closed:
	default:
		assert.Fail(t, "backend not closed")
	}
}

func TestRun_ListenerFailureStopsApp(t *testing.T) {
	orig := openBackend
	t.Cleanup(func() { openBackend = orig })
	openBackend = repomanager.Open

	cfg := &config.Config{
		Backend:             config.BackendMemory,
		EndpointAddrGRPC:    "127.0.0.1:99999",
		EndpointAddrMetrics: "127.0.0.1:0",
		LogLevel:            "error",
	}
	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app kept running after gRPC listen failure")
	}
}

func stubSignals(t *testing.T) (chan chan<- os.Signal, chan struct{}) {
	t.Helper()
	origNotify, origStop := notifySignals, stopSignals
	t.Cleanup(func() { notifySignals, stopSignals = origNotify, origStop })

	registered := make(chan chan<- os.Signal, 1)
	stopped := make(chan struct{})
	notifySignals = func(c chan<- os.Signal, _ ...os.Signal) { registered <- c }
	stopSignals = func(chan<- os.Signal) { close(stopped) }
	return registered, stopped
}

func memoryApp(t *testing.T) *App {
	t.Helper()
	orig := openBackend
	t.Cleanup(func() { openBackend = orig })
	openBackend = repomanager.Open

	app, err := NewApp(context.Background(), &config.Config{Backend: config.BackendMemory, EndpointAddrGRPC: "127.0.0.1:0", LogLevel: "error"})
	require.NoError(t, err)
	return app
}

func TestRun_ReleasesSignalsOnCancel(t *testing.T) {
	_, stopped := stubSignals(t)
	app := memoryApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("signal handler still registered")
	}
}

func TestRun_StopsOnSignal(t *testing.T) {
	registered, stopped := stubSignals(t)
	app := memoryApp(t)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	sigs := <-registered
	sigs <- os.Interrupt

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app ignored the signal")
	}
	<-stopped
}
