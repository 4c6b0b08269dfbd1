// Package metrics provides internal metrics utilities for casref.
package metrics

import "github.com/arloliu/casref/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// This is used as the default collector when no collector is configured,
// avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all measurements
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// IncResolveTotal discards the measurement.
func (m *NopMetrics) IncResolveTotal() {}

// IncResolveError discards the measurement.
func (m *NopMetrics) IncResolveError() {}

// IncResolveCached discards the measurement.
func (m *NopMetrics) IncResolveCached() {}

// ObserveResolveDuration discards the measurement.
func (m *NopMetrics) ObserveResolveDuration(_ float64) {}

// IncClusterCreated discards the measurement.
func (m *NopMetrics) IncClusterCreated(_ string) {}

// SetClusterCount discards the measurement.
func (m *NopMetrics) SetClusterCount(_ int) {}

// IncSessionOpened discards the measurement.
func (m *NopMetrics) IncSessionOpened(_ string) {}

// IncSessionError discards the measurement.
func (m *NopMetrics) IncSessionError(_ string) {}
