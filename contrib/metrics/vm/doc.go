// Package vm provides a VictoriaMetrics-based implementation of the MetricsCollector interface.
//
// This package uses github.com/VictoriaMetrics/metrics for lightweight,
// high-performance Prometheus-compatible metrics collection.
//
// # Basic Usage
//
// Create a collector with default prefix "casref":
//
//	collector := vm.New()
//	factory, _ := casref.NewFactory(registry,
//	    casref.WithMetrics(collector),
//	)
//
// # Custom Prefix
//
// Use WithPrefix to customize the metric name prefix:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//
// # Exposing Metrics
//
// Use the Handler method to expose metrics via HTTP:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
//
// # Metrics Provided
//
// Resolution:
//   - {prefix}_resolve_total - Counter of resolve calls
//   - {prefix}_resolve_errors_total - Counter of failed resolves
//   - {prefix}_resolve_cached_total - Counter of resolves served from cache
//   - {prefix}_resolve_duration_seconds - Histogram of first-resolution latencies
//
// Registry:
//   - {prefix}_clusters - Gauge of cluster handles held
//   - {prefix}_cluster_created_total{cluster} - Counter of handle creations
//   - {prefix}_sessions_opened_total{cluster} - Counter of driver sessions opened
//   - {prefix}_session_errors_total{cluster} - Counter of failed session attempts
package vm
