// Package v1 provides an adapter for gocql v1 (github.com/gocql/gocql).
package v1

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/arloliu/casref/adapter/cql"
	"github.com/arloliu/casref/types"
)

// Option configures a Connector.
type Option func(*Connector)

// WithClusterConfigFunc registers a hook applied to the gocql cluster
// configuration after the standard mapping, before session creation.
//
// Use this for driver settings a resource reference cannot express
// (authentication, TLS, custom host selection policies).
//
// Parameters:
//   - fn: Function that mutates the mapped configuration
//
// Returns:
//   - Option: Configuration option
//
// Example:
//
//	connector := v1.NewConnector(v1.WithClusterConfigFunc(func(c *gocql.ClusterConfig) {
//	    c.Authenticator = gocql.PasswordAuthenticator{Username: user, Password: pass}
//	}))
func WithClusterConfigFunc(fn func(*gocql.ClusterConfig)) Option {
	return func(c *Connector) {
		c.configure = fn
	}
}

// Connector implements cql.Connector over gocql v1.
type Connector struct {
	configure func(*gocql.ClusterConfig)
}

// Compile-time assertion that Connector implements cql.Connector.
var _ cql.Connector = (*Connector)(nil)

// NewConnector creates a gocql v1 connector.
//
// Parameters:
//   - opts: Configuration options (e.g., WithClusterConfigFunc)
//
// Returns:
//   - *Connector: A connector ready to be injected into a Registry
func NewConnector(opts ...Option) *Connector {
	c := &Connector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect maps the host configuration onto gocql and creates a session
// bound to the given keyspace.
//
// gocql v1 has no context-aware dial; the context is checked before the
// blocking session creation and the configured maxConnectTime bounds the
// dial itself.
func (c *Connector) Connect(ctx context.Context, cfg *types.HostConfig, keyspace string) (cql.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cluster := BuildClusterConfig(cfg)
	cluster.Keyspace = keyspace
	if c.configure != nil {
		c.configure(cluster)
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, err
	}

	return &Session{session: session}, nil
}

// Session wraps a gocql v1 session.
type Session struct {
	session *gocql.Session
}

// NewSession creates a new v1 adapter from an existing gocql session.
//
// This is useful when the application already manages its own gocql
// session and only wants the casref handle surface.
//
// Parameters:
//   - session: A gocql.Session instance
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// Query creates a new query for the given statement.
func (s *Session) Query(stmt string, values ...any) cql.Query {
	return &Query{query: s.session.Query(stmt, values...)}
}

// Close terminates the session.
func (s *Session) Close() {
	s.session.Close()
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	return s.session.Closed()
}

// Query wraps a gocql v1 query.
type Query struct {
	query *gocql.Query
}

// WithContext associates a context with the query.
func (q *Query) WithContext(ctx context.Context) cql.Query {
	q.query = q.query.WithContext(ctx)
	return q
}

// Consistency sets the consistency level for the query.
func (q *Query) Consistency(c cql.Consistency) cql.Query {
	q.query = q.query.Consistency(gocql.Consistency(c))
	return q
}

// PageSize sets the number of rows to fetch per page.
func (q *Query) PageSize(n int) cql.Query {
	q.query = q.query.PageSize(n)
	return q
}

// Exec executes the query without returning rows.
func (q *Query) Exec() error {
	return q.query.Exec()
}

// Scan executes the query and scans a single row into dest.
func (q *Query) Scan(dest ...any) error {
	return q.query.Scan(dest...)
}

// MapScan executes the query and scans a single row into the map.
func (q *Query) MapScan(m map[string]any) error {
	return q.query.MapScan(m)
}

// Iter returns an iterator for reading multiple rows.
func (q *Query) Iter() cql.Iter {
	return &Iter{iter: q.query.Iter()}
}

// Iter wraps a gocql v1 iterator.
type Iter struct {
	iter *gocql.Iter
}

// Scan reads the next row into dest.
func (i *Iter) Scan(dest ...any) bool {
	return i.iter.Scan(dest...)
}

// MapScan reads the next row into the map.
func (i *Iter) MapScan(m map[string]any) bool {
	return i.iter.MapScan(m)
}

// PageState returns the pagination token for resuming iteration.
func (i *Iter) PageState() []byte {
	return i.iter.PageState()
}

// NumRows returns the number of rows in the current page.
func (i *Iter) NumRows() int {
	return i.iter.NumRows()
}

// Close closes the iterator and returns any error from iteration.
func (i *Iter) Close() error {
	return i.iter.Close()
}
