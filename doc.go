// Package casref resolves directory-service style resource references
// into Cassandra keyspace handles.
//
// A resource reference is a named bag of string attributes, typically
// declared by a hosting environment (a context.xml Resource element, a
// YAML resources file). casref parses the attributes into a typed
// configuration, obtains a shared cluster handle keyed by cluster name,
// and returns a cached keyspace handle. Everything the configuration
// tunes (pooling, host discovery, downed-host retry, failure tracking)
// is executed by the CQL driver behind the adapter/cql contract.
//
// # Basic Usage
//
//	// One registry per application; it owns cluster handle sharing.
//	registry, err := casref.NewRegistry(v1.NewConnector())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer registry.Close()
//
//	factory, err := casref.NewFactory(registry)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ref := casref.NewReference("cassandra/Tracker", map[string]string{
//	    "hosts":       "cass1:9042,cass2:9042",
//	    "clusterName": "Tracker Cluster",
//	    "keyspace":    "tracker",
//	    "maxActive":   "20",
//	})
//
//	keyspace, err := factory.Resolve(ref)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session, err := keyspace.Session(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = session.Query("INSERT INTO events (id, ts) VALUES (?, ?)", id, ts).Exec()
//
// # Resolution Semantics
//
// A factory parses its reference at most once. The first successful
// Resolve caches the keyspace handle; later calls return it without
// looking at their input. Resolution is atomic: on any error nothing is
// cached. Concurrent first calls are serialized.
//
// # Error Handling
//
// Resolve fails with types.ErrInvalidReference when the input is not a
// *Reference, and with *types.ConfigError when a required attribute is
// missing or a value cannot be coerced:
//
//	_, err := factory.Resolve(ref)
//	var cfgErr *types.ConfigError
//	switch {
//	case errors.Is(err, types.ErrInvalidReference):
//	    // wrong input shape
//	case errors.As(err, &cfgErr):
//	    // cfgErr.Attr names the offending attribute
//	}
//
// Errors from the driver surface unmodified from Keyspace.Session and
// the session's queries; casref retries nothing on its own.
package casref
