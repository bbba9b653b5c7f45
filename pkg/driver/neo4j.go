package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// Neo4jExecutor implements GraphExecutor against a Neo4j database.
type Neo4jExecutor struct {
	client   neo4j.DriverWithContext
	database string
}

// NewNeo4jExecutor creates a new Neo4j executor instance.
func NewNeo4jExecutor(uri, username, password, database string) (*Neo4jExecutor, error) {
	client, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if database == "" {
		database = "neo4j"
	}

	return &Neo4jExecutor{
		client:   client,
		database: database,
	}, nil
}

// ExecuteQuery runs a read query in its own session and collects all records.
func (n *Neo4jExecutor) ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]*db.Record, error) {
	session := n.client.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: n.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}

	records, ok := result.([]*db.Record)
	if !ok {
		return nil, fmt.Errorf("unexpected result type: got %T, expected []*db.Record", result)
	}
	return records, nil
}

// Ping verifies connectivity to the store.
func (n *Neo4jExecutor) Ping(ctx context.Context) error {
	return n.client.VerifyConnectivity(ctx)
}

// Close releases the underlying driver and its connection pool.
func (n *Neo4jExecutor) Close(ctx context.Context) error {
	return n.client.Close(ctx)
}
