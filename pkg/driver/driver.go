// Package driver provides access to the labeled-property graph store that
// mirrors the candidate records. The search core only reads; connection
// lifecycle and pooling are owned here.
package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// GraphExecutor runs a parameterized graph query and returns the raw result
// rows. Implementations own session and connection management; every call is
// an independent read.
type GraphExecutor interface {
	ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]*db.Record, error)
	Close(ctx context.Context) error
}

// Pinger is implemented by executors that can verify store connectivity,
// used by readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
