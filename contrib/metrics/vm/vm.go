package vm

import (
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/VictoriaMetrics/metrics"

	"github.com/arloliu/casref/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "casref"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead
// of creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// Resolution metrics are pre-created at initialization time; per-cluster
// metrics are created on first use since cluster names are only known at
// resolution time. Thread-safe for concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	resolveTotal    *metrics.Counter
	resolveErrors   *metrics.Counter
	resolveCached   *metrics.Counter
	resolveDuration *metrics.Histogram
	clusterCount    atomic.Int64
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set and registers it globally
// unless WithMetricsSet is provided.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	factory, _ := casref.NewFactory(registry,
//	    casref.WithMetrics(collector),
//	)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "casref",
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates the resolution metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	c.resolveTotal = c.set.NewCounter(p + "_resolve_total")
	c.resolveErrors = c.set.NewCounter(p + "_resolve_errors_total")
	c.resolveCached = c.set.NewCounter(p + "_resolve_cached_total")
	c.resolveDuration = c.set.NewHistogram(p + "_resolve_duration_seconds")
	c.set.NewGauge(p+"_clusters", func() float64 {
		return float64(c.clusterCount.Load())
	})
}

// Set returns the underlying metrics set.
func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics to the given writer in Prometheus format.
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// IncResolveTotal increments the total resolve operations counter.
func (c *Collector) IncResolveTotal() {
	c.resolveTotal.Inc()
}

// IncResolveError increments the resolve error counter.
func (c *Collector) IncResolveError() {
	c.resolveErrors.Inc()
}

// IncResolveCached increments the cached-resolve counter.
func (c *Collector) IncResolveCached() {
	c.resolveCached.Inc()
}

// ObserveResolveDuration records a first-resolution duration in seconds.
func (c *Collector) ObserveResolveDuration(seconds float64) {
	c.resolveDuration.Update(seconds)
}

// IncClusterCreated increments the per-cluster creation counter.
func (c *Collector) IncClusterCreated(clusterName string) {
	c.set.GetOrCreateCounter(fmt.Sprintf(`%s_cluster_created_total{cluster=%q}`, c.prefix, clusterName)).Inc()
}

// SetClusterCount sets the gauge of cluster handles held by a registry.
func (c *Collector) SetClusterCount(n int) {
	c.clusterCount.Store(int64(n))
}

// IncSessionOpened increments the per-cluster session counter.
func (c *Collector) IncSessionOpened(clusterName string) {
	c.set.GetOrCreateCounter(fmt.Sprintf(`%s_sessions_opened_total{cluster=%q}`, c.prefix, clusterName)).Inc()
}

// IncSessionError increments the per-cluster session error counter.
func (c *Collector) IncSessionError(clusterName string) {
	c.set.GetOrCreateCounter(fmt.Sprintf(`%s_session_errors_total{cluster=%q}`, c.prefix, clusterName)).Inc()
}
