package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/savebank/internal/client/models"
	"github.com/dmitrijs2005/savebank/internal/store"
)

type fakeStatus struct {
	mu     sync.Mutex
	events []models.StatusEvent
}

func (f *fakeStatus) SetStatus(ev models.StatusEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

func (f *fakeStatus) all() []models.StatusEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.StatusEvent(nil), f.events...)
}

func (f *fakeStatus) last() models.StatusEvent {
	ev := f.all()
	if len(ev) == 0 {
		return models.StatusEvent{}
	}
	return ev[len(ev)-1]
}

type fakeContainer struct {
	mu      sync.Mutex
	items   []models.Item
	clears  int
	appends int
}

func (f *fakeContainer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = nil
	f.clears++
}

func (f *fakeContainer) Append(it models.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, it)
	f.appends++
}

func (f *fakeContainer) labels() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.items))
	for i, it := range f.items {
		out[i] = it.Label
	}
	return out
}

type fakeField struct {
	value   string
	cleared bool
}

func (f *fakeField) Value() string { return f.value }
func (f *fakeField) Clear()        { f.value = ""; f.cleared = true }

type fakeClipboard struct {
	mu     sync.Mutex
	err    error
	writes []string
}

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	alerts []string
}

func (f *fakeNotifier) Alert(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, msg)
}

// recordingStore counts calls and can fail or block.
type recordingStore struct {
	store.Store
	pushErr error
	getErr  error

	pushes []store.Fields
	paths  []string
	gets   atomic.Int32

	// gates[i], when present, is received from before the i-th Get returns.
	gates []chan struct{}
}

func (r *recordingStore) Push(ctx context.Context, path string, f store.Fields) (string, error) {
	r.paths = append(r.paths, path)
	r.pushes = append(r.pushes, f)
	if r.pushErr != nil {
		return "", r.pushErr
	}
	return r.Store.Push(ctx, path, f)
}

func (r *recordingStore) Get(ctx context.Context, q store.Query) (*store.Snapshot, error) {
	i := int(r.gets.Add(1)) - 1
	if i < len(r.gates) {
		<-r.gates[i]
	}
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.Store.Get(ctx, q)
}

var errBoom = errors.New("permission denied")
