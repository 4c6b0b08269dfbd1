// Package cql defines the driver-neutral collaborator contract consumed
// by casref: a Connector that turns a resolved types.HostConfig into a
// live Session bound to a keyspace.
//
// Two adapters are provided:
//
//   - adapter/cql/v1: github.com/gocql/gocql
//   - adapter/cql/v2: github.com/apache/cassandra-gocql-driver/v2
//
// Applications normally construct one connector at startup and hand it
// to a casref.Registry:
//
//	registry, _ := casref.NewRegistry(v1.NewConnector())
//	factory, _ := casref.NewFactory(registry)
//
// The Session/Query/Iter interfaces are deliberately a narrow subset of
// the drivers' APIs. Everything the resolved configuration tunes
// (pooling, discovery, downed-host retry, failure tracking) runs inside
// the driver; casref only maps configuration onto it.
package cql
