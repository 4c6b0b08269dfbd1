package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/casref"
	v1 "github.com/arloliu/casref/adapter/cql/v1"
	v2 "github.com/arloliu/casref/adapter/cql/v2"
)

func newTestReference(host, keyspace string) *casref.Reference {
	return casref.NewReference("cassandra/Integration", map[string]string{
		"hosts":                host,
		"clusterName":          "Integration Cluster",
		"keyspace":             keyspace,
		"maxActive":            "2",
		"socketTimeoutMillis":  "30000",
		"maxConnectTimeMillis": "30000",
	})
}

func TestResolveAndQuery(t *testing.T) {
	host, keyspace := getSharedCassandra(t)
	createTestTable(t, host, keyspace, "resolve_rt")

	ctx := context.Background()

	registry, err := casref.NewRegistry(v1.NewConnector())
	require.NoError(t, err)
	defer registry.Close()

	factory, err := casref.NewFactory(registry)
	require.NoError(t, err)

	ks, err := factory.Resolve(newTestReference(host, keyspace))
	require.NoError(t, err)
	require.NotNil(t, ks)
	assert.Equal(t, keyspace, ks.Name())

	session, err := ks.Session(ctx)
	require.NoError(t, err)

	err = session.Query("INSERT INTO resolve_rt (id, value) VALUES (?, ?)", "k1", "v1").
		WithContext(ctx).
		Exec()
	require.NoError(t, err)

	var value string
	err = session.Query("SELECT value FROM resolve_rt WHERE id = ?", "k1").
		WithContext(ctx).
		Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "v1", value)
}

func TestResolveCachedHandle(t *testing.T) {
	host, keyspace := getSharedCassandra(t)

	registry, err := casref.NewRegistry(v1.NewConnector())
	require.NoError(t, err)
	defer registry.Close()

	factory, err := casref.NewFactory(registry)
	require.NoError(t, err)

	first, err := factory.Resolve(newTestReference(host, keyspace))
	require.NoError(t, err)

	// Later calls return the cached handle without re-parsing.
	second, err := factory.Resolve(nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestResolveSharedCluster(t *testing.T) {
	host, keyspace := getSharedCassandra(t)

	registry, err := casref.NewRegistry(v1.NewConnector())
	require.NoError(t, err)
	defer registry.Close()

	factoryA, err := casref.NewFactory(registry)
	require.NoError(t, err)
	factoryB, err := casref.NewFactory(registry)
	require.NoError(t, err)

	ksA, err := factoryA.Resolve(newTestReference(host, keyspace))
	require.NoError(t, err)
	ksB, err := factoryB.Resolve(newTestReference(host, keyspace))
	require.NoError(t, err)

	assert.Same(t, ksA.Cluster(), ksB.Cluster())
	assert.Equal(t, 1, registry.Len())
}

func TestResolveAndQueryV2Driver(t *testing.T) {
	host, keyspace := getSharedCassandra(t)
	createTestTable(t, host, keyspace, "resolve_rt_v2")

	ctx := context.Background()

	registry, err := casref.NewRegistry(v2.NewConnector())
	require.NoError(t, err)
	defer registry.Close()

	factory, err := casref.NewFactory(registry)
	require.NoError(t, err)

	ks, err := factory.Resolve(newTestReference(host, keyspace))
	require.NoError(t, err)

	session, err := ks.Session(ctx)
	require.NoError(t, err)

	err = session.Query("INSERT INTO resolve_rt_v2 (id, value) VALUES (?, ?)", "k1", "v2").
		WithContext(ctx).
		Exec()
	require.NoError(t, err)

	var value string
	err = session.Query("SELECT value FROM resolve_rt_v2 WHERE id = ?", "k1").
		WithContext(ctx).
		Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}
