package vm

import (
	"strings"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	// A private set keeps tests independent of global registration.
	return New(WithMetricsSet(metrics.NewSet()), WithPrefix("test"))
}

func TestCollectorCounters(t *testing.T) {
	c := newTestCollector(t)

	c.IncResolveTotal()
	c.IncResolveTotal()
	c.IncResolveError()
	c.IncResolveCached()
	c.ObserveResolveDuration(0.002)
	c.IncClusterCreated("Test Cluster")
	c.SetClusterCount(1)
	c.IncSessionOpened("Test Cluster")
	c.IncSessionError("Test Cluster")

	var sb strings.Builder
	c.WritePrometheus(&sb)
	out := sb.String()

	assert.Contains(t, out, "test_resolve_total 2")
	assert.Contains(t, out, "test_resolve_errors_total 1")
	assert.Contains(t, out, "test_resolve_cached_total 1")
	assert.Contains(t, out, "test_clusters 1")
	assert.Contains(t, out, `test_cluster_created_total{cluster="Test Cluster"} 1`)
	assert.Contains(t, out, `test_sessions_opened_total{cluster="Test Cluster"} 1`)
	assert.Contains(t, out, `test_session_errors_total{cluster="Test Cluster"} 1`)
}

func TestCollectorDefaultPrefix(t *testing.T) {
	c := New(WithMetricsSet(metrics.NewSet()))
	c.IncResolveTotal()

	var sb strings.Builder
	c.WritePrometheus(&sb)
	require.Contains(t, sb.String(), "casref_resolve_total 1")
}
