// Package types provides shared types and error definitions for the casref library.
//
// This is a leaf package with zero casref imports to prevent import cycles.
// All packages in casref can safely import this package.
//
// # HostConfig
//
// HostConfig is the typed cluster configuration produced by parsing a
// resource reference. Required fields (Hosts, ClusterName) are plain
// values; the twenty optional driver tuning knobs are pointers where nil
// means "driver default".
//
// # Errors
//
// Sentinel errors are provided for common failure scenarios:
//
//   - ErrInvalidReference: the object passed to Resolve is not a resource reference
//   - ErrMissingAttribute: a required attribute is absent or empty
//   - ErrNilConnector: a nil connector was provided to a Registry
//   - ErrNilRegistry: a nil registry was provided to a Factory
//
// ConfigError carries the offending attribute name, its raw value and
// the coercion cause. It unwraps for errors.Is/As:
//
//	var cfgErr *types.ConfigError
//	if errors.As(err, &cfgErr) {
//	    log.Printf("bad attribute %s: %s", cfgErr.Attr, cfgErr.Reason)
//	}
package types
