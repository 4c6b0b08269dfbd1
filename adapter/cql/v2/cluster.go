package v2

import (
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/arloliu/casref/types"
)

// defaultKeepalivePeriod is the TCP keepalive period applied when a
// reference enables keepalive without the driver exposing a period knob.
const defaultKeepalivePeriod = 30 * time.Second

// defaultReconnectRetries bounds downed-host reconnection attempts when
// the reference enables retry but supplies no queue size.
const defaultReconnectRetries = 10

// BuildClusterConfig maps a resolved HostConfig onto an Apache gocql v2
// cluster configuration.
//
// The mapping is identical to adapter/cql/v1; see that package's
// documentation for the full table and the list of knobs the driver
// owns internally.
//
// Parameters:
//   - cfg: The resolved cluster configuration
//
// Returns:
//   - *gocql.ClusterConfig: A driver configuration ready for session creation
func BuildClusterConfig(cfg *types.HostConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.Hosts...)

	if cfg.MaxActive != nil {
		cluster.NumConns = *cfg.MaxActive
	}
	if cfg.SocketTimeout != nil {
		cluster.Timeout = *cfg.SocketTimeout
	}
	if cfg.MaxConnectTime != nil {
		cluster.ConnectTimeout = *cfg.MaxConnectTime
	}
	if cfg.UseSocketKeepalive != nil && *cfg.UseSocketKeepalive {
		cluster.SocketKeepalive = defaultKeepalivePeriod
	}

	applyDiscovery(cluster, cfg)
	applyReconnection(cluster, cfg)

	return cluster
}

func applyDiscovery(cluster *gocql.ClusterConfig, cfg *types.HostConfig) {
	if cfg.AutoDiscoverHosts == nil {
		return
	}

	enabled := *cfg.AutoDiscoverHosts
	cluster.DisableInitialHostLookup = !enabled
	cluster.Events.DisableTopologyEvents = !enabled
	cluster.Events.DisableNodeStatusEvents = !enabled

	if enabled && cfg.RunAutoDiscoveryAtStartup != nil {
		cluster.DisableInitialHostLookup = !*cfg.RunAutoDiscoveryAtStartup
	}
}

func applyReconnection(cluster *gocql.ClusterConfig, cfg *types.HostConfig) {
	if cfg.RetryDownedHosts == nil {
		return
	}

	if !*cfg.RetryDownedHosts {
		cluster.ReconnectInterval = 0
		return
	}

	interval := cluster.ReconnectInterval
	if cfg.RetryDownedHostsDelay != nil {
		interval = *cfg.RetryDownedHostsDelay
		cluster.ReconnectInterval = interval
	}

	retries := defaultReconnectRetries
	if cfg.RetryDownedHostsQueueSize != nil {
		retries = *cfg.RetryDownedHostsQueueSize
	}

	cluster.ReconnectionPolicy = &gocql.ConstantReconnectionPolicy{
		MaxRetries: retries,
		Interval:   interval,
	}
}
