package driver

import (
	"context"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/sony/gobreaker"

	"github.com/candigraph/candigraph/pkg/config"
)

// BreakerExecutor wraps a GraphExecutor with circuit breaking logic. When the
// store fails repeatedly the breaker opens and queries fail fast; callers see
// an ordinary executor error and degrade to empty results as usual.
type BreakerExecutor struct {
	executor GraphExecutor
	cb       *gobreaker.CircuitBreaker
	logger   *slog.Logger
}

// NewBreakerExecutor creates a circuit-breaking executor around exec.
func NewBreakerExecutor(exec GraphExecutor, cfg config.CircuitBreakerConfig, logger *slog.Logger, name string) *BreakerExecutor {
	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= cfg.ReadyToTripRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state change",
					"name", name, "from", from.String(), "to", to.String())
			}
		},
	}

	return &BreakerExecutor{
		executor: exec,
		cb:       gobreaker.NewCircuitBreaker(st),
		logger:   logger,
	}
}

// ExecuteQuery implements GraphExecutor
func (b *BreakerExecutor) ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]*db.Record, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.executor.ExecuteQuery(ctx, cypher, params)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*db.Record), nil
}

// Ping implements Pinger when the wrapped executor does.
func (b *BreakerExecutor) Ping(ctx context.Context) error {
	if p, ok := b.executor.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close implements GraphExecutor
func (b *BreakerExecutor) Close(ctx context.Context) error {
	return b.executor.Close(ctx)
}
