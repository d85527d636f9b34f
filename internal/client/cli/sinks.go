package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/savebank/internal/client/models"
)

// terminalStatus prints status events as they arrive.
type terminalStatus struct {
	mu   sync.Mutex
	w    io.Writer
	last models.StatusEvent
}

func (s *terminalStatus) SetStatus(ev models.StatusEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = ev
	fmt.Fprintln(s.w, ev.Message)
}

func (s *terminalStatus) Last() models.StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// itemList is the container of the last listing. Items are addressed
// 1-based by the copy command.
type itemList struct {
	mu    sync.Mutex
	items []models.Item
}

func (l *itemList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

func (l *itemList) Append(it models.Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, it)
}

func (l *itemList) Get(n int) (models.Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 1 || n > len(l.items) {
		return models.Item{}, false
	}
	return l.items[n-1], true
}

func (l *itemList) Print(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		fmt.Fprintf(w, "%3d. %s\n", i+1, it.Label)
	}
}

// lineField holds the text typed for the next save.
type lineField struct {
	value string
}

func (f *lineField) Value() string { return f.value }
func (f *lineField) Clear()        { f.value = "" }

// terminalNotifier prints alerts on their own line.
type terminalNotifier struct {
	w io.Writer
}

func (n terminalNotifier) Alert(msg string) {
	fmt.Fprintf(n.w, "! %s\n", msg)
}
