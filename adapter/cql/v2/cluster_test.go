package v2

import (
	"testing"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/casref/types"
)

func TestBuildClusterConfigMapping(t *testing.T) {
	maxActive := 8
	socketTimeout := 2 * time.Second
	keepalive := true
	discover := false

	cluster := BuildClusterConfig(&types.HostConfig{
		Hosts:              []string{"cass1:9042"},
		ClusterName:        "C",
		MaxActive:          &maxActive,
		SocketTimeout:      &socketTimeout,
		UseSocketKeepalive: &keepalive,
		AutoDiscoverHosts:  &discover,
	})

	assert.Equal(t, 8, cluster.NumConns)
	assert.Equal(t, 2*time.Second, cluster.Timeout)
	assert.Equal(t, defaultKeepalivePeriod, cluster.SocketKeepalive)
	assert.True(t, cluster.DisableInitialHostLookup)
	assert.True(t, cluster.Events.DisableTopologyEvents)
}

func TestBuildClusterConfigReconnection(t *testing.T) {
	retry := true
	delay := 20 * time.Second
	queue := 3

	cluster := BuildClusterConfig(&types.HostConfig{
		Hosts:                     []string{"cass1:9042"},
		ClusterName:               "C",
		RetryDownedHosts:          &retry,
		RetryDownedHostsDelay:     &delay,
		RetryDownedHostsQueueSize: &queue,
	})

	assert.Equal(t, delay, cluster.ReconnectInterval)
	policy, ok := cluster.ReconnectionPolicy.(*gocql.ConstantReconnectionPolicy)
	require.True(t, ok)
	assert.Equal(t, 3, policy.MaxRetries)
}
