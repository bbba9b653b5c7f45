package driver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candigraph/candigraph/pkg/config"
)

type stubExecutor struct {
	records []*db.Record
	err     error
	calls   int
	pinged  bool
}

func (s *stubExecutor) ExecuteQuery(context.Context, string, map[string]any) ([]*db.Record, error) {
	s.calls++
	return s.records, s.err
}

func (s *stubExecutor) Ping(context.Context) error {
	s.pinged = true
	return nil
}

func (s *stubExecutor) Close(context.Context) error {
	return nil
}

func breakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      3,
		Interval:         60,
		Timeout:          30,
		ReadyToTripRatio: 0.6,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBreakerPassesThrough(t *testing.T) {
	stub := &stubExecutor{records: []*db.Record{{Keys: []string{"c"}}}}
	exec := NewBreakerExecutor(stub, breakerConfig(), discardLogger(), "test")

	records, err := exec.ExecuteQuery(context.Background(), "RETURN 1", nil)

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, stub.calls)
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	stub := &stubExecutor{err: errors.New("connection refused")}
	exec := NewBreakerExecutor(stub, breakerConfig(), discardLogger(), "test")

	for i := 0; i < 3; i++ {
		_, err := exec.ExecuteQuery(context.Background(), "RETURN 1", nil)
		require.Error(t, err)
	}
	assert.Equal(t, 3, stub.calls)

	// Open breaker fails fast without touching the store.
	_, err := exec.ExecuteQuery(context.Background(), "RETURN 1", nil)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, stub.calls)
}

func TestBreakerDelegatesPing(t *testing.T) {
	stub := &stubExecutor{}
	exec := NewBreakerExecutor(stub, breakerConfig(), discardLogger(), "test")

	require.NoError(t, exec.Ping(context.Background()))
	assert.True(t, stub.pinged)
}
