package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/savebank/internal/client/models"
	"github.com/dmitrijs2005/savebank/internal/common"
	"github.com/dmitrijs2005/savebank/internal/logging"
	"github.com/dmitrijs2005/savebank/internal/store"
)

const MsgRetrieveErrorPrefix = "Error retrieving files: "

// RetrieveService reads every save record, newest first.
type RetrieveService struct {
	store  store.Store
	path   string
	logger logging.Logger
}

func NewRetrieveService(s store.Store, path string, l logging.Logger) *RetrieveService {
	return &RetrieveService{store: s, path: path, logger: l.With("module", "retrieve_service")}
}

// FetchAll queries the collection ascending by timestamp and returns the
// records reversed. An absent collection yields an empty slice. On a store
// error a Failure status is sent to status and an error wrapping
// common.ErrStoreRead is returned; no partial result is returned.
func (s *RetrieveService) FetchAll(ctx context.Context, status StatusSink) ([]models.SaveRecord, error) {
	q := store.NewQuery(s.path).OrderByChild(common.FieldTimestamp)

	snap, err := s.store.Get(ctx, q)
	if err != nil {
		s.logger.Error(ctx, "error retrieving files", "error", err.Error())
		status.SetStatus(models.StatusEvent{Kind: models.StatusFailure, Message: MsgRetrieveErrorPrefix + err.Error()})
		return nil, fmt.Errorf("%w: %w", common.ErrStoreRead, err)
	}

	records := make([]models.SaveRecord, 0, snap.Len())
	if !snap.Exists() {
		return records, nil
	}

	snap.ForEach(func(c store.Child) bool {
		records = append(records, s.toRecord(ctx, c))
		return false
	})
	slices.Reverse(records)
	return records, nil
}

// toRecord is lenient: a missing or mistyped field becomes its zero value.
func (s *RetrieveService) toRecord(ctx context.Context, c store.Child) models.SaveRecord {
	rec := models.SaveRecord{ID: c.Key}

	if v, ok := c.Value[common.FieldSaveString].(string); ok {
		rec.SaveString = v
	} else {
		s.logger.Warn(ctx, "record without save string", "key", c.Key)
	}

	if ts, ok := store.AsInt64(c.Value[common.FieldTimestamp]); ok {
		rec.Timestamp = ts
	} else {
		s.logger.Warn(ctx, "record without timestamp", "key", c.Key)
	}
	return rec
}
