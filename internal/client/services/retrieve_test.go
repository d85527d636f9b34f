package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/savebank/internal/client/models"
	"github.com/dmitrijs2005/savebank/internal/common"
	"github.com/dmitrijs2005/savebank/internal/logging"
	"github.com/dmitrijs2005/savebank/internal/store"
	"github.com/dmitrijs2005/savebank/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s store.Store, stamps ...int64) {
	t.Helper()
	for _, ts := range stamps {
		_, err := s.Push(context.Background(), common.DefaultCollectionPath, store.Fields{
			common.FieldSaveString: "save-" + string(rune('0'+ts/100)),
			common.FieldTimestamp:  ts,
		})
		require.NoError(t, err)
	}
}

func TestFetchAll_NewestFirst(t *testing.T) {
	mem := memory.New()
	seed(t, mem, 100, 300, 200)
	svc := NewRetrieveService(mem, common.DefaultCollectionPath, logging.Nop{})

	recs, err := svc.FetchAll(context.Background(), &fakeStatus{})
	require.NoError(t, err)

	var stamps []int64
	for _, r := range recs {
		stamps = append(stamps, r.Timestamp)
		assert.NotEmpty(t, r.ID)
	}
	assert.Equal(t, []int64{300, 200, 100}, stamps)
	assert.Equal(t, "save-3", recs[0].SaveString)
}

func TestFetchAll_EmptyCollection(t *testing.T) {
	svc := NewRetrieveService(memory.New(), common.DefaultCollectionPath, logging.Nop{})
	status := &fakeStatus{}

	recs, err := svc.FetchAll(context.Background(), status)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	assert.Empty(t, status.all())
}

func TestFetchAll_StoreError(t *testing.T) {
	rs := &recordingStore{Store: memory.New(), getErr: errBoom}
	svc := NewRetrieveService(rs, common.DefaultCollectionPath, logging.Nop{})
	status := &fakeStatus{}

	recs, err := svc.FetchAll(context.Background(), status)
	require.ErrorIs(t, err, common.ErrStoreRead)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, recs)
	assert.Equal(t, models.StatusEvent{Kind: models.StatusFailure, Message: "Error retrieving files: permission denied"}, status.last())
}

func TestFetchAll_LenientFields(t *testing.T) {
	mem := memory.New()
	_, err := mem.Push(context.Background(), "savedata", store.Fields{"timestamp": "soon"})
	require.NoError(t, err)
	_, err = mem.Push(context.Background(), "savedata", store.Fields{"saveString": "x", "timestamp": float64(5)})
	require.NoError(t, err)

	svc := NewRetrieveService(mem, "savedata", logging.Nop{})
	recs, err := svc.FetchAll(context.Background(), &fakeStatus{})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// strings sort after numbers, so the malformed child is newest
	assert.Equal(t, "", recs[0].SaveString)
	assert.Equal(t, int64(0), recs[0].Timestamp)
	assert.Equal(t, models.SaveRecord{ID: recs[1].ID, SaveString: "x", Timestamp: 5}, recs[1])
}
