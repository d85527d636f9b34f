package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/savebank/internal/client/models"
	"github.com/dmitrijs2005/savebank/internal/common"
	"github.com/dmitrijs2005/savebank/internal/logging"
	"github.com/dmitrijs2005/savebank/internal/store"
)

const (
	MsgEnterSaveString = "Please enter a save file string first."
	MsgSaving          = "Saving file..."
	MsgSaved           = "Save file successfully saved!"
	MsgSaveErrorPrefix = "Error saving file: "
)

// SaveService validates and submits new save records.
type SaveService struct {
	store  store.Store
	path   string
	logger logging.Logger
	clock  func() time.Time
}

// NewSaveService returns a SaveService writing under path.
func NewSaveService(s store.Store, path string, l logging.Logger) *SaveService {
	return &SaveService{
		store:  s,
		path:   path,
		logger: l.With("module", "save_service"),
		clock:  time.Now,
	}
}

// Submit saves the field's current value. An empty value is rejected without
// contacting the store. On success the field is cleared. Every status is sent
// to status; the last one is returned.
func (s *SaveService) Submit(ctx context.Context, field InputField, status StatusSink) models.StatusEvent {
	emit := func(kind models.StatusKind, msg string) models.StatusEvent {
		ev := models.StatusEvent{Kind: kind, Message: msg}
		status.SetStatus(ev)
		return ev
	}

	text := field.Value()
	if text == "" {
		return emit(models.StatusValidationFailed, MsgEnterSaveString)
	}

	emit(models.StatusInProgress, MsgSaving)

	key, err := s.store.Push(ctx, s.path, store.Fields{
		common.FieldSaveString: text,
		common.FieldTimestamp:  s.clock().UnixMilli(),
	})
	if err != nil {
		s.logger.Error(ctx, "error saving file", "error", fmt.Errorf("%w: %w", common.ErrStoreWrite, err).Error())
		return emit(models.StatusFailure, MsgSaveErrorPrefix+err.Error())
	}

	s.logger.Debug(ctx, "saved", "key", key)
	field.Clear()
	return emit(models.StatusSuccess, MsgSaved)
}
