package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HostConfig is the strongly typed cluster configuration derived from a
// resource reference.
//
// Required fields are plain values; every optional tuning knob is a
// pointer, where nil means "leave the driver default untouched".
//
// All pooling, discovery, retry and host-health behavior configured here
// is executed by the CQL driver, never by casref itself.
type HostConfig struct {
	// Hosts is the list of contact points, each "host" or "host:port".
	Hosts []string

	// ClusterName keys the shared cluster handle in a Registry.
	ClusterName string

	// MaxActive caps the number of pooled connections per host.
	MaxActive *int

	// MaxWaitWhenExhausted bounds how long a caller blocks waiting for a
	// pooled connection.
	MaxWaitWhenExhausted *time.Duration

	// Lifo selects last-in-first-out pool ordering when true.
	Lifo *bool

	// UseFramedTransport enables framed wire transport.
	UseFramedTransport *bool

	// MaxFrameSize limits the wire frame size in bytes.
	MaxFrameSize *int

	// UseSocketKeepalive enables TCP keepalive on driver connections.
	UseSocketKeepalive *bool

	// MaxConnectTime bounds connection establishment.
	MaxConnectTime *time.Duration

	// MaxLastSuccessTime is the staleness threshold after which a
	// connection with no successful operation is considered suspect.
	MaxLastSuccessTime *time.Duration

	// SocketTimeout bounds individual socket reads.
	SocketTimeout *time.Duration

	// AutoDiscoverHosts enables cluster topology discovery.
	AutoDiscoverHosts *bool

	// RunAutoDiscoveryAtStartup runs a discovery pass during session
	// creation. Only meaningful when AutoDiscoverHosts is true.
	RunAutoDiscoveryAtStartup *bool

	// AutoDiscoveryDelay is the interval between discovery passes.
	// Only meaningful when AutoDiscoverHosts is true.
	AutoDiscoveryDelay *time.Duration

	// RetryDownedHosts controls whether downed hosts are retried.
	// Derived: a configured retry delay below one second disables retry.
	RetryDownedHosts *bool

	// RetryDownedHostsDelay is the interval between retry attempts.
	RetryDownedHostsDelay *time.Duration

	// RetryDownedHostsQueueSize bounds the downed-host retry queue.
	RetryDownedHostsQueueSize *int

	// UseHostTimeoutTracker enables failure-suspension tracking.
	UseHostTimeoutTracker *bool

	// HostTimeoutCounter is the number of timeouts within the tracking
	// window that suspends a host. Only meaningful when
	// UseHostTimeoutTracker is true.
	HostTimeoutCounter *int

	// HostTimeoutSuspensionDuration is how long a suspended host stays
	// out of rotation.
	HostTimeoutSuspensionDuration *time.Duration

	// HostTimeoutUnsuspendCheckDelay is the interval between checks for
	// hosts eligible to rejoin.
	HostTimeoutUnsuspendCheckDelay *time.Duration

	// HostTimeoutWindow is the sliding window over which timeouts are
	// counted.
	HostTimeoutWindow *time.Duration
}

// String renders the resolved configuration for diagnostic logging.
//
// Nil optional fields are omitted so the record shows exactly what the
// reference supplied.
func (c *HostConfig) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "hosts=%s clusterName=%s", strings.Join(c.Hosts, ","), c.ClusterName)

	appendInt := func(name string, v *int) {
		if v != nil {
			fmt.Fprintf(&b, " %s=%d", name, *v)
		}
	}
	appendBool := func(name string, v *bool) {
		if v != nil {
			fmt.Fprintf(&b, " %s=%t", name, *v)
		}
	}
	appendDur := func(name string, v *time.Duration) {
		if v != nil {
			fmt.Fprintf(&b, " %s=%s", name, *v)
		}
	}

	appendInt("maxActive", c.MaxActive)
	appendDur("maxWaitWhenExhausted", c.MaxWaitWhenExhausted)
	appendBool("lifo", c.Lifo)
	appendBool("useFramedTransport", c.UseFramedTransport)
	appendInt("maxFrameSize", c.MaxFrameSize)
	appendBool("useSocketKeepalive", c.UseSocketKeepalive)
	appendDur("maxConnectTime", c.MaxConnectTime)
	appendDur("maxLastSuccessTime", c.MaxLastSuccessTime)
	appendDur("socketTimeout", c.SocketTimeout)
	appendBool("autoDiscoverHosts", c.AutoDiscoverHosts)
	appendBool("runAutoDiscoveryAtStartup", c.RunAutoDiscoveryAtStartup)
	appendDur("autoDiscoveryDelay", c.AutoDiscoveryDelay)
	appendBool("retryDownedHosts", c.RetryDownedHosts)
	appendDur("retryDownedHostsDelay", c.RetryDownedHostsDelay)
	appendInt("retryDownedHostsQueueSize", c.RetryDownedHostsQueueSize)
	appendBool("useHostTimeoutTracker", c.UseHostTimeoutTracker)
	appendInt("hostTimeoutCounter", c.HostTimeoutCounter)
	appendDur("hostTimeoutSuspensionDuration", c.HostTimeoutSuspensionDuration)
	appendDur("hostTimeoutUnsuspendCheckDelay", c.HostTimeoutUnsuspendCheckDelay)
	appendDur("hostTimeoutWindow", c.HostTimeoutWindow)

	return b.String()
}

// Consistency represents the Cassandra consistency level.
type Consistency uint16

// Common consistency levels matching gocql.
const (
	Any         Consistency = 0x00
	One         Consistency = 0x01
	Two         Consistency = 0x02
	Three       Consistency = 0x03
	Quorum      Consistency = 0x04
	All         Consistency = 0x05
	LocalQuorum Consistency = 0x06
	EachQuorum  Consistency = 0x07
	Serial      Consistency = 0x08
	LocalSerial Consistency = 0x09
	LocalOne    Consistency = 0x0A
)

// Sentinel errors for common failure scenarios.
var (
	// ErrInvalidReference indicates the object passed to Resolve is not
	// a resource reference.
	ErrInvalidReference = errors.New("casref: object is not a resource reference")

	// ErrMissingAttribute indicates a required reference attribute is
	// absent or empty. Wrapped by *ConfigError; check with errors.Is.
	ErrMissingAttribute = errors.New("casref: required attribute missing")

	// ErrNilConnector indicates a nil connector was provided to a Registry.
	ErrNilConnector = errors.New("casref: connector cannot be nil")

	// ErrNilRegistry indicates a nil registry was provided to a Factory.
	ErrNilRegistry = errors.New("casref: registry cannot be nil")
)

// ConfigError reports a missing or malformed reference attribute.
//
// Resolution is atomic: a ConfigError means no cluster or keyspace
// handle was created or cached.
type ConfigError struct {
	// Attr is the attribute name as it appears in the reference.
	Attr string

	// Value is the raw attribute content, empty when the attribute is
	// missing.
	Value string

	// Reason describes what was expected.
	Reason string

	// Cause is the underlying coercion error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := "casref: attribute " + e.Attr
	if e.Value != "" {
		msg += "=" + strconv.Quote(e.Value)
	}
	msg += ": " + e.Reason
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}
