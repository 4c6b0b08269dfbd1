// Package testutil provides helpers for casref integration tests.
//
// The package starts disposable Cassandra containers via testcontainers
// and prepares a keyspace for tests to use.
//
// # Usage
//
//	container, err := testutil.StartCassandra(ctx, t, nil)
//	require.NoError(t, err)
//
//	ref := casref.NewReference("cassandra/Test", map[string]string{
//	    "hosts":       container.Host,
//	    "clusterName": "Test Cluster",
//	    "keyspace":    container.Keyspace,
//	})
//
// Integration tests require Docker and are skipped in -short mode.
package testutil
