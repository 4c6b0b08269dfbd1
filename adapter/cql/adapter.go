// Package cql provides CQL-specific adapter interfaces for different gocql versions.
package cql

import (
	"context"

	"github.com/arloliu/casref/types"
)

// Consistency is a convenience alias re-exported from the types package.
type Consistency = types.Consistency

// Re-export consistency level constants for convenience.
const (
	Any         = types.Any
	One         = types.One
	Two         = types.Two
	Three       = types.Three
	Quorum      = types.Quorum
	All         = types.All
	LocalQuorum = types.LocalQuorum
	EachQuorum  = types.EachQuorum
	Serial      = types.Serial
	LocalSerial = types.LocalSerial
	LocalOne    = types.LocalOne
)

// Connector establishes driver sessions from a resolved host configuration.
//
// A Connector is injected into a Registry; every cluster handle created
// by that registry dials through it. Implementations translate the
// driver-neutral HostConfig into the driver's own cluster configuration.
type Connector interface {
	// Connect creates a driver session bound to the given keyspace.
	//
	// Parameters:
	//   - ctx: Context for cancellation during session establishment
	//   - cfg: The resolved cluster configuration
	//   - keyspace: Name of the keyspace the session operates on
	//
	// Returns:
	//   - Session: A live driver session
	//   - error: Error if the session cannot be established
	Connect(ctx context.Context, cfg *types.HostConfig, keyspace string) (Session, error)
}

// Session is the driver session surface exposed through a keyspace handle.
//
// This interface is implemented by adapters for gocql v1 and v2. It is
// intentionally a small subset of the drivers' session API: the factory
// hands off to the driver, it does not re-wrap every driver feature.
type Session interface {
	// Query creates a new Query instance for the given statement.
	//
	// Parameters:
	//   - stmt: CQL statement with ? placeholders
	//   - values: Values to bind to placeholders
	//
	// Returns:
	//   - Query: A query builder for further configuration
	Query(stmt string, values ...any) Query

	// Close terminates the session and releases driver resources.
	Close()

	// Closed reports whether the session has been closed.
	Closed() bool
}

// Query mirrors the driver's chainable query builder.
type Query interface {
	// WithContext associates a context with the query.
	WithContext(ctx context.Context) Query

	// Consistency sets the consistency level for the query.
	Consistency(c Consistency) Query

	// PageSize sets the number of rows to fetch per page.
	PageSize(n int) Query

	// Exec executes the query without returning rows.
	Exec() error

	// Scan executes the query and scans a single row into dest.
	Scan(dest ...any) error

	// MapScan executes the query and scans a single row into the map.
	MapScan(m map[string]any) error

	// Iter returns an iterator for reading multiple rows.
	Iter() Iter
}

// Iter mirrors the driver's result iterator.
type Iter interface {
	// Scan reads the next row into dest, returning false when exhausted.
	Scan(dest ...any) bool

	// MapScan reads the next row into the map, returning false when exhausted.
	MapScan(m map[string]any) bool

	// PageState returns the pagination token for resuming iteration.
	PageState() []byte

	// NumRows returns the number of rows in the current page.
	NumRows() int

	// Close closes the iterator and returns any error from iteration.
	Close() error
}
