// Package v1 implements the cql.Connector contract over gocql v1
// (github.com/gocql/gocql).
//
// # Configuration Mapping
//
// BuildClusterConfig translates the driver-neutral types.HostConfig into
// a gocql.ClusterConfig:
//
//	maxActive                   → NumConns
//	socketTimeout               → Timeout
//	maxConnectTime              → ConnectTimeout
//	useSocketKeepalive          → SocketKeepalive (30s period)
//	autoDiscoverHosts           → DisableInitialHostLookup, Events.DisableTopologyEvents,
//	                              Events.DisableNodeStatusEvents (all inverted)
//	runAutoDiscoveryAtStartup   → DisableInitialHostLookup (inverted)
//	retryDownedHosts            → ReconnectInterval (0 when disabled)
//	retryDownedHostsDelay       → ReconnectInterval, ConstantReconnectionPolicy.Interval
//	retryDownedHostsQueueSize   → ConstantReconnectionPolicy.MaxRetries
//
// # Unmapped Knobs
//
// gocql manages its connection pool and host conviction internally and
// exposes no equivalents for lifo, maxWaitWhenExhausted,
// useFramedTransport (the native protocol is always framed),
// maxFrameSize, maxLastSuccessTime, or the hostTimeout* tracker family.
// These attributes are parsed and carried in the HostConfig so that
// diagnostics show what the reference asked for, but this adapter does
// not act on them.
//
// Driver settings a reference cannot express are reachable through
// WithClusterConfigFunc.
package v1
