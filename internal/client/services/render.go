package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/savebank/internal/client/models"
	"github.com/dmitrijs2005/savebank/internal/common"
	"github.com/dmitrijs2005/savebank/internal/logging"
)

const (
	MsgLoading       = "Getting save files..."
	MsgNoSaves       = "No save files found."
	MsgDone          = "Done."
	MsgLoadError     = "Error loading or displaying files."
	MsgCopied        = "Copied to clipboard!"
	MsgCopyErrPrefix = "Failed to copy: "

	LabelPrefix = "Save from "
	LabelLayout = "15:04 | 02-01-2006"
)

// FormatLocalLabel formats epochMillis in loc as HH:MM | DD-MM-YYYY.
func FormatLocalLabel(epochMillis int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(epochMillis).In(loc).Format(LabelLayout)
}

// RenderService turns the stored saves into copyable items.
//
// Every RenderAll takes a generation number. Only the newest render may
// write to the sinks once its fetch completes; older ones return
// ErrStaleRender and leave the container untouched.
type RenderService struct {
	retrieve  *RetrieveService
	clipboard Clipboard
	notifier  Notifier
	loc       *time.Location
	logger    logging.Logger

	gen    atomic.Uint64
	commit sync.Mutex
}

func NewRenderService(r *RetrieveService, c Clipboard, n Notifier, loc *time.Location, l logging.Logger) *RenderService {
	return &RenderService{
		retrieve:  r,
		clipboard: c,
		notifier:  n,
		loc:       loc,
		logger:    l.With("module", "render_service"),
	}
}

// latestSink forwards to the wrapped sink only while token is the newest
// render generation.
type latestSink struct {
	r     *RenderService
	token uint64
	sink  StatusSink
}

func (s latestSink) SetStatus(ev models.StatusEvent) {
	if s.r.gen.Load() == s.token {
		s.sink.SetStatus(ev)
	}
}

// RenderAll fetches every save and replaces the container's items with one
// item per save, newest first. Only the most recently started call commits:
// an older call that finishes later leaves the container alone and returns
// ErrStaleRender.
func (r *RenderService) RenderAll(ctx context.Context, status StatusSink, container ContainerSink) error {
	token := r.gen.Add(1)
	guarded := latestSink{r: r, token: token, sink: status}

	guarded.SetStatus(models.StatusEvent{Kind: models.StatusInProgress, Message: MsgLoading})

	records, err := r.retrieve.FetchAll(ctx, guarded)

	r.commit.Lock()
	defer r.commit.Unlock()

	if r.gen.Load() != token {
		r.logger.Debug(ctx, "discarding stale render", "generation", token)
		return ErrStaleRender
	}

	if err != nil {
		r.logger.Error(ctx, "error loading or displaying files", "error", err.Error())
		status.SetStatus(models.StatusEvent{Kind: models.StatusFailure, Message: MsgLoadError})
		return err
	}

	container.Clear()
	if len(records) == 0 {
		status.SetStatus(models.StatusEvent{Kind: models.StatusEmpty, Message: MsgNoSaves})
		return nil
	}

	for _, rec := range records {
		container.Append(r.MakeItem(rec))
	}
	status.SetStatus(models.StatusEvent{Kind: models.StatusDone, Message: MsgDone})
	return nil
}

// MakeItem builds the item for rec. Activating it copies the save string to
// the clipboard and reports the outcome through the notifier. Activations
// are independent of each other.
func (r *RenderService) MakeItem(rec models.SaveRecord) models.Item {
	return models.Item{
		Label: LabelPrefix + FormatLocalLabel(rec.Timestamp, r.loc),
		Activate: func(ctx context.Context) error {
			if err := r.clipboard.WriteText(ctx, rec.SaveString); err != nil {
				r.logger.Error(ctx, "failed to copy", "id", rec.ID, "error", err.Error())
				r.notifier.Alert(MsgCopyErrPrefix + err.Error())
				return fmt.Errorf("%w: %w", common.ErrClipboard, err)
			}
			r.notifier.Alert(MsgCopied)
			return nil
		},
	}
}
