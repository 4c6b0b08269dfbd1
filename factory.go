package casref

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/casref/internal/logging"
	"github.com/arloliu/casref/internal/metrics"
	"github.com/arloliu/casref/types"
)

// Factory resolves a resource reference into a keyspace handle.
//
// A factory parses its reference exactly once: the first successful
// Resolve derives the configuration, obtains the shared cluster handle
// from the registry and caches the keyspace handle. Every later call
// returns the cached handle without inspecting its input.
//
// Factory is safe for concurrent use; racing first calls are serialized
// so the reference is parsed at most once.
type Factory struct {
	registry *Registry
	logger   types.Logger
	metrics  types.MetricsCollector
	id       string

	mu       sync.Mutex
	cfg      *types.HostConfig
	keyspace *Keyspace
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the structured logger.
//
// If not set, a no-op logger is used that discards all messages.
// The logger interface is compatible with zap.SugaredLogger; see
// contrib/logging/zap.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// If not set, a no-op collector is used that discards all metrics.
// Use contrib/metrics/vm.New() for VictoriaMetrics integration.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(f *Factory) {
		f.metrics = collector
	}
}

// NewFactory creates a resource reference factory bound to a registry.
//
// The registry determines which cluster handles are shared: factories
// holding the same registry and resolving the same cluster name receive
// the identical cluster handle.
//
// Parameters:
//   - registry: The cluster handle registry (required)
//   - opts: Configuration options (e.g., WithLogger, WithMetrics)
//
// Returns:
//   - *Factory: A new factory
//   - error: types.ErrNilRegistry if registry is nil
func NewFactory(registry *Registry, opts ...Option) (*Factory, error) {
	if registry == nil {
		return nil, types.ErrNilRegistry
	}

	f := &Factory{
		registry: registry,
		logger:   logging.NewNopLogger(),
		metrics:  metrics.NewNopMetrics(),
		id:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// ID returns the factory's unique identifier, used to correlate
// diagnostic records.
func (f *Factory) ID() string {
	return f.id
}

// Resolve turns a resource reference into a keyspace handle.
//
// The object must be a *Reference; anything else fails with
// types.ErrInvalidReference. The first successful call parses the
// reference, registers the cluster handle and caches the keyspace
// handle; subsequent calls return the cached handle regardless of
// input. Resolution is atomic: on any error nothing is cached and a
// later call starts over.
//
// Resolve performs no I/O. Driver sessions are established lazily via
// Keyspace.Session.
//
// Parameters:
//   - object: The reference to resolve, typed any to match the
//     resource-factory contract of the hosting environment
//
// Returns:
//   - *Keyspace: The cached keyspace handle
//   - error: types.ErrInvalidReference or *types.ConfigError
func (f *Factory) Resolve(object any) (*Keyspace, error) {
	f.metrics.IncResolveTotal()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.keyspace != nil {
		f.metrics.IncResolveCached()
		return f.keyspace, nil
	}

	ref, ok := object.(*Reference)
	if !ok || ref == nil {
		f.metrics.IncResolveError()
		return nil, types.ErrInvalidReference
	}

	start := time.Now()
	cfg, keyspaceName, err := ParseReference(ref)
	if err != nil {
		f.metrics.IncResolveError()
		return nil, err
	}

	cluster := f.registry.GetOrCreate(cfg.ClusterName, cfg)
	keyspace := cluster.Keyspace(keyspaceName)

	f.cfg = cfg
	f.keyspace = keyspace

	f.metrics.ObserveResolveDuration(time.Since(start).Seconds())
	f.logger.Info("resource reference resolved",
		"factory", f.id,
		"resource", ref.Name(),
		"keyspace", keyspaceName,
		"config", cfg.String(),
	)

	return keyspace, nil
}

// Config returns the configuration derived by the first successful
// Resolve, or nil if the factory has not resolved yet.
func (f *Factory) Config() *types.HostConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg
}
