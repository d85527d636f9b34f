package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/savebank/internal/client/client"
	"github.com/dmitrijs2005/savebank/internal/client/clipboard"
	"github.com/dmitrijs2005/savebank/internal/client/config"
	"github.com/dmitrijs2005/savebank/internal/client/repositories/savedata"
	"github.com/dmitrijs2005/savebank/internal/client/services"
	"github.com/dmitrijs2005/savebank/internal/filex"
	"github.com/dmitrijs2005/savebank/internal/logging"
	"github.com/dmitrijs2005/savebank/internal/store"
	"github.com/dmitrijs2005/savebank/internal/store/memory"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
	ModeLocal   Mode = "local"
)

// pinger is implemented by stores that live behind a network connection.
type pinger interface {
	Ping(ctx context.Context) error
}

// seams for tests
var (
	newRemoteStore = func(addr string) (client.Client, error) {
		return client.NewStoreClient(addr)
	}
	initDatabase = client.InitDatabase
)

type App struct {
	config *config.Config
	logger logging.Logger

	store  store.Store
	closer func() error

	save   *services.SaveService
	render *services.RenderService

	status *terminalStatus
	list   *itemList
	field  *lineField

	reader *bufio.Reader
	out    io.Writer

	mu   sync.RWMutex
	Mode Mode
}

// openStore builds the store selected by c.Store and the function releasing it.
func openStore(ctx context.Context, c *config.Config) (store.Store, func() error, error) {
	switch c.Store {
	case config.StoreRemote:
		cl, err := newRemoteStore(c.ServerEndpointAddr)
		if err != nil {
			return nil, nil, err
		}
		return cl, cl.Close, nil

	case config.StoreSQLite:
		if _, err := filex.EnsureParentDir(c.LocalDatabasePath); err != nil {
			return nil, nil, err
		}
		db, err := initDatabase(ctx, c.LocalDatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		return savedata.NewSQLiteRepository(db), db.Close, nil

	case config.StoreMemory:
		return memory.New(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", c.Store)
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewText(os.Stderr, c.LogLevel)

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	s, closer, err := openStore(ctx, c)
	if err != nil {
		logger.Error(ctx, "store init failed", "store", c.Store, "error", err.Error())
		return nil, err
	}

	return newApp(c, logger, s, closer, clipboard.New(), loc, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, l logging.Logger, s store.Store, closer func() error,
	clip services.Clipboard, loc *time.Location, in io.Reader, out io.Writer) *App {

	retrieve := services.NewRetrieveService(s, c.CollectionPath, l)

	a := &App{
		config: c,
		logger: l,
		store:  s,
		closer: closer,
		save:   services.NewSaveService(s, c.CollectionPath, l),
		render: services.NewRenderService(retrieve, clip, terminalNotifier{w: out}, loc, l),
		status: &terminalStatus{w: out},
		list:   &itemList{},
		field:  &lineField{},
		reader: bufio.NewReader(in),
		out:    out,
	}
	if _, ok := s.(pinger); !ok {
		a.Mode = ModeLocal
	}
	return a
}

func (a *App) mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) prompt() string {
	if !interactive() {
		return ""
	}
	if m := a.mode(); m != "" {
		return fmt.Sprintf("savebank (%s) > ", m)
	}
	return "savebank > "
}

// Run starts the watcher for remote stores and blocks in the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if err := a.closer(); err != nil {
			a.logger.Error(ctx, "close failed", "error", err.Error())
		}
	}()

	if p, ok := a.store.(pinger); ok {
		go a.StartOnlineStatusWatcher(ctx, p, a.config.OnlineCheckInterval)
	}

	if interactive() {
		fmt.Fprintln(a.out, "Welcome to SaveBank CLI (type 'help' for commands)")
	}
	runREPL(ctx, a, a.prompt, a.reader)
}

func (a *App) checkOnline(ctx context.Context, p pinger) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, p pinger, interval time.Duration) {

	a.checkOnline(ctx, p)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx, p)
		case <-ctx.Done():
			return
		}
	}
}
