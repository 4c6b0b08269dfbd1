package casref

import (
	"context"
	"sync/atomic"

	"github.com/arloliu/casref/adapter/cql"
	"github.com/arloliu/casref/types"
)

// mockConnector implements cql.Connector for testing.
type mockConnector struct {
	connects   atomic.Int64
	connectErr error
	lastCfg    *types.HostConfig
	lastKS     string
}

func newMockConnector() *mockConnector {
	return &mockConnector{}
}

func (m *mockConnector) Connect(_ context.Context, cfg *types.HostConfig, keyspace string) (cql.Session, error) {
	m.connects.Add(1)
	m.lastCfg = cfg
	m.lastKS = keyspace
	if m.connectErr != nil {
		return nil, m.connectErr
	}
	return &mockSession{keyspace: keyspace}, nil
}

// mockSession implements cql.Session for testing.
type mockSession struct {
	keyspace string
	queries  []string
	closed   atomic.Bool
}

func (m *mockSession) Query(stmt string, _ ...any) cql.Query {
	m.queries = append(m.queries, stmt)
	return &mockQuery{}
}

func (m *mockSession) Close() {
	m.closed.Store(true)
}

func (m *mockSession) Closed() bool {
	return m.closed.Load()
}

// mockQuery implements cql.Query for testing.
type mockQuery struct{}

func (q *mockQuery) WithContext(_ context.Context) cql.Query { return q }
func (q *mockQuery) Consistency(_ cql.Consistency) cql.Query { return q }
func (q *mockQuery) PageSize(_ int) cql.Query                { return q }
func (q *mockQuery) Exec() error                             { return nil }
func (q *mockQuery) Scan(_ ...any) error                     { return nil }
func (q *mockQuery) MapScan(_ map[string]any) error          { return nil }
func (q *mockQuery) Iter() cql.Iter                          { return &mockIter{} }

// mockIter implements cql.Iter for testing.
type mockIter struct{}

func (i *mockIter) Scan(_ ...any) bool            { return false }
func (i *mockIter) MapScan(_ map[string]any) bool { return false }
func (i *mockIter) PageState() []byte             { return nil }
func (i *mockIter) NumRows() int                  { return 0 }
func (i *mockIter) Close() error                  { return nil }

// recordingLogger captures log records for assertions.
type recordingLogger struct {
	records []logRecord
}

type logRecord struct {
	level string
	msg   string
	args  []any
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.append("debug", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.append("info", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.append("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.append("error", msg, args) }
func (l *recordingLogger) Fatal(msg string, args ...any) { l.append("fatal", msg, args) }

func (l *recordingLogger) append(level, msg string, args []any) {
	l.records = append(l.records, logRecord{level: level, msg: msg, args: args})
}

func (l *recordingLogger) infoCount(msg string) int {
	n := 0
	for _, rec := range l.records {
		if rec.level == "info" && rec.msg == msg {
			n++
		}
	}
	return n
}

// countingMetrics counts collector calls for assertions.
type countingMetrics struct {
	resolveTotal    atomic.Int64
	resolveError    atomic.Int64
	resolveCached   atomic.Int64
	resolveObserved atomic.Int64
	clusterCreated  atomic.Int64
	clusterCount    atomic.Int64
	sessionOpened   atomic.Int64
	sessionError    atomic.Int64
}

func (m *countingMetrics) IncResolveTotal()                 { m.resolveTotal.Add(1) }
func (m *countingMetrics) IncResolveError()                 { m.resolveError.Add(1) }
func (m *countingMetrics) IncResolveCached()                { m.resolveCached.Add(1) }
func (m *countingMetrics) ObserveResolveDuration(_ float64) { m.resolveObserved.Add(1) }
func (m *countingMetrics) IncClusterCreated(_ string)       { m.clusterCreated.Add(1) }
func (m *countingMetrics) SetClusterCount(n int)            { m.clusterCount.Store(int64(n)) }
func (m *countingMetrics) IncSessionOpened(_ string)        { m.sessionOpened.Add(1) }
func (m *countingMetrics) IncSessionError(_ string)         { m.sessionError.Add(1) }

// validAttrs returns the minimal set of required attributes.
func validAttrs() map[string]string {
	return map[string]string{
		AttrHosts:       "cass1:9042,cass2:9042",
		AttrClusterName: "Test Cluster",
		AttrKeyspace:    "tracker",
	}
}

func newTestRegistry(connector cql.Connector) *Registry {
	registry, err := NewRegistry(connector)
	if err != nil {
		panic(err)
	}
	return registry
}
