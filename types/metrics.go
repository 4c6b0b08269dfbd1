package types

// MetricsCollector defines methods for collecting operational metrics.
//
// Implementations should be thread-safe as methods may be called
// concurrently.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	import vmmetrics "github.com/arloliu/casref/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	factory, _ := casref.NewFactory(registry,
//	    casref.WithMetrics(collector),
//	)
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// ----------------------
	// Resolution
	// ----------------------

	// IncResolveTotal increments the total resolve operations counter.
	IncResolveTotal()

	// IncResolveError increments the resolve error counter.
	IncResolveError()

	// IncResolveCached increments the counter of resolves served from
	// the factory cache.
	IncResolveCached()

	// ObserveResolveDuration records a first-resolution duration in seconds.
	ObserveResolveDuration(seconds float64)

	// ----------------------
	// Registry
	// ----------------------

	// IncClusterCreated increments the counter of cluster handles created.
	IncClusterCreated(clusterName string)

	// SetClusterCount sets the gauge of cluster handles held by a registry.
	SetClusterCount(n int)

	// ----------------------
	// Sessions
	// ----------------------

	// IncSessionOpened increments the counter of driver sessions opened.
	IncSessionOpened(clusterName string)

	// IncSessionError increments the counter of failed session attempts.
	IncSessionError(clusterName string)
}
