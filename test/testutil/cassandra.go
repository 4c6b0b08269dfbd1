package testutil

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/cassandra"
)

// CassandraContainer wraps a running Cassandra test container.
type CassandraContainer struct {
	Container *cassandra.CassandraContainer
	Host      string
	Keyspace  string
}

// CassandraOptions configures the Cassandra container.
type CassandraOptions struct {
	// Image is the Cassandra image to use. Defaults to "cassandra:4.1".
	Image string
	// Keyspace is the keyspace to create. Defaults to "casref_test".
	Keyspace string
}

// DefaultCassandraOptions returns default options for the Cassandra container.
func DefaultCassandraOptions() CassandraOptions {
	return CassandraOptions{
		Image:    "cassandra:4.1",
		Keyspace: "casref_test",
	}
}

// StartCassandra starts a Cassandra container and creates the test keyspace.
//
// The caller is responsible for terminating the container via Terminate.
// Taking no testing.T keeps this callable from TestMain, where tests
// typically share a single node.
//
// Parameters:
//   - ctx: Context for container operations
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *CassandraContainer: Container with its host address and keyspace
//   - error: Error if the container or keyspace setup fails
func StartCassandra(ctx context.Context, opts *CassandraOptions) (*CassandraContainer, error) {
	if opts == nil {
		defaultOpts := DefaultCassandraOptions()
		opts = &defaultOpts
	}

	container, err := cassandra.Run(ctx, opts.Image,
		testcontainers.WithEnv(map[string]string{
			"HEAP_NEWSIZE":     "128M",
			"MAX_HEAP_SIZE":    "512M",
			"CASSANDRA_SNITCH": "SimpleSnitch",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start Cassandra container: %w", err)
	}

	host, err := container.ConnectionHost(ctx)
	if err != nil {
		_ = container.Terminate(ctx)

		return nil, fmt.Errorf("failed to get connection host: %w", err)
	}

	if err := createKeyspace(host, opts.Keyspace); err != nil {
		_ = container.Terminate(ctx)

		return nil, err
	}

	return &CassandraContainer{
		Container: container,
		Host:      host,
		Keyspace:  opts.Keyspace,
	}, nil
}

// Terminate stops and removes the container.
func (c *CassandraContainer) Terminate(ctx context.Context) error {
	return c.Container.Terminate(ctx)
}

// createKeyspace connects to the system keyspace and creates the test
// keyspace, retrying while the node finishes bootstrapping.
func createKeyspace(host, keyspace string) error {
	cluster := gocql.NewCluster(host)
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 60 * time.Second
	cluster.ConnectTimeout = 60 * time.Second
	cluster.Keyspace = "system"

	var (
		session *gocql.Session
		err     error
	)
	for i := 0; i < 10; i++ {
		session, err = cluster.CreateSession()
		if err == nil {
			break
		}
		log.Printf("waiting for Cassandra to be ready (attempt %d/10): %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("failed to create session after retries: %w", err)
	}
	defer session.Close()

	createKeyspaceQuery := fmt.Sprintf(`
		CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}
	`, keyspace)

	if err := session.Query(createKeyspaceQuery).Exec(); err != nil {
		return fmt.Errorf("failed to create keyspace: %w", err)
	}

	return nil
}
