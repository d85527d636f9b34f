package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/savebank/internal/store/memory"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetricsInterceptor_CountsByMethodAndCode(t *testing.T) {
	s := newTestServer(memory.New())
	info := &grpc.UnaryServerInfo{FullMethod: "/savebank.store.StoreService/Push"}

	ok := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }
	bad := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "nope")
	}

	resp, err := s.metricsInterceptor(context.Background(), nil, info, ok)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	_, _ = s.metricsInterceptor(context.Background(), nil, info, ok)
	_, err = s.metricsInterceptor(context.Background(), nil, info, bad)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues("Push", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues("Push", "InvalidArgument")))
	assert.Equal(t, 1, testutil.CollectAndCount(s.metrics.duration))
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer(memory.New())
	info := &grpc.UnaryServerInfo{FullMethod: "/savebank.store.StoreService/Get"}
	want := errors.New("boom")

	called := false
	_, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return nil, want
	})
	assert.True(t, called)
	assert.ErrorIs(t, err, want)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.observe("Push", "OK", 0) })
}
