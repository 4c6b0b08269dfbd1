package casref

import (
	"context"
	"sync"

	"github.com/arloliu/casref/adapter/cql"
	"github.com/arloliu/casref/internal/logging"
	"github.com/arloliu/casref/internal/metrics"
	"github.com/arloliu/casref/types"
)

// Registry holds cluster handles keyed by cluster name.
//
// Applications construct one registry at startup and inject it into
// every Factory that should share cluster handles. Two factories
// resolving the same cluster name against the same registry receive the
// identical *Cluster.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	connector cql.Connector
	clusters  map[string]*Cluster
	logger    types.Logger
	metrics   types.MetricsCollector
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the structured logger for the registry and
// the cluster handles it creates.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - RegistryOption: Configuration option
func WithRegistryLogger(logger types.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithRegistryMetrics sets the metrics collector for the registry and
// the cluster handles it creates.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - RegistryOption: Configuration option
func WithRegistryMetrics(collector types.MetricsCollector) RegistryOption {
	return func(r *Registry) {
		r.metrics = collector
	}
}

// NewRegistry creates a cluster handle registry backed by the given
// connector.
//
// Parameters:
//   - connector: Driver connector used by every cluster handle
//   - opts: Configuration options
//
// Returns:
//   - *Registry: A new registry
//   - error: types.ErrNilConnector if connector is nil
func NewRegistry(connector cql.Connector, opts ...RegistryOption) (*Registry, error) {
	if connector == nil {
		return nil, types.ErrNilConnector
	}

	r := &Registry{
		connector: connector,
		clusters:  make(map[string]*Cluster),
		logger:    logging.NewNopLogger(),
		metrics:   metrics.NewNopMetrics(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// GetOrCreate returns the cluster handle for the given name, creating
// it from cfg if absent.
//
// The first configuration registered under a name wins; later calls
// with a different configuration still return the existing handle, as
// cluster handles are shared process-wide state among all consumers of
// this registry.
//
// Parameters:
//   - name: The cluster name
//   - cfg: Configuration used only when the handle does not exist yet
//
// Returns:
//   - *Cluster: The shared cluster handle
func (r *Registry) GetOrCreate(name string, cfg *types.HostConfig) *Cluster {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cluster, ok := r.clusters[name]; ok {
		return cluster
	}

	cluster := &Cluster{
		name:      name,
		cfg:       cfg,
		connector: r.connector,
		logger:    r.logger,
		metrics:   r.metrics,
		sessions:  make(map[string]cql.Session),
	}
	r.clusters[name] = cluster

	r.logger.Debug("cluster handle created", "cluster", name)
	r.metrics.IncClusterCreated(name)
	r.metrics.SetClusterCount(len(r.clusters))

	return cluster
}

// Len returns the number of cluster handles held by the registry.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clusters)
}

// Close closes every driver session opened through this registry's
// cluster handles. Handles remain registered but their sessions are
// discarded; a later Session call dials again.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cluster := range r.clusters {
		cluster.closeSessions()
	}
}

// Cluster is a shared client-side handle for a named data-store cluster.
//
// The handle itself is pure configuration; driver sessions are
// materialized lazily, one per keyspace, on first use.
type Cluster struct {
	name      string
	cfg       *types.HostConfig
	connector cql.Connector
	logger    types.Logger
	metrics   types.MetricsCollector

	mu       sync.Mutex
	sessions map[string]cql.Session
}

// Name returns the cluster name.
func (c *Cluster) Name() string {
	return c.name
}

// Config returns the configuration the handle was created with.
func (c *Cluster) Config() *types.HostConfig {
	return c.cfg
}

// Keyspace derives a keyspace handle from this cluster.
//
// Parameters:
//   - name: The keyspace name
//
// Returns:
//   - *Keyspace: A keyspace handle bound to this cluster
func (c *Cluster) Keyspace(name string) *Keyspace {
	return &Keyspace{name: name, cluster: c}
}

// session returns the shared driver session for a keyspace, dialing
// through the connector on first use.
func (c *Cluster) session(ctx context.Context, keyspace string) (cql.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if session, ok := c.sessions[keyspace]; ok && !session.Closed() {
		return session, nil
	}

	session, err := c.connector.Connect(ctx, c.cfg, keyspace)
	if err != nil {
		c.metrics.IncSessionError(c.name)
		c.logger.Error("session creation failed",
			"cluster", c.name,
			"keyspace", keyspace,
			"error", err,
		)
		return nil, err
	}

	c.sessions[keyspace] = session
	c.metrics.IncSessionOpened(c.name)
	c.logger.Info("session opened", "cluster", c.name, "keyspace", keyspace)

	return session, nil
}

func (c *Cluster) closeSessions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, session := range c.sessions {
		session.Close()
	}
	c.sessions = make(map[string]cql.Session)
}

// Keyspace is a named logical namespace within a cluster, returned by
// Factory.Resolve and shared by reference among all callers.
type Keyspace struct {
	name    string
	cluster *Cluster
}

// Name returns the keyspace name.
func (k *Keyspace) Name() string {
	return k.name
}

// Cluster returns the cluster handle this keyspace belongs to.
func (k *Keyspace) Cluster() *Cluster {
	return k.cluster
}

// Session returns the shared driver session for this keyspace,
// establishing it on first call.
//
// The session is owned by the cluster handle: repeated calls and other
// keyspace handles with the same name receive the same session.
//
// Parameters:
//   - ctx: Context for cancellation during session establishment
//
// Returns:
//   - cql.Session: The shared driver session
//   - error: Error from the driver if the session cannot be established
func (k *Keyspace) Session(ctx context.Context) (cql.Session, error) {
	return k.cluster.session(ctx, k.name)
}
