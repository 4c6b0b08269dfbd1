// Package integration_test provides end-to-end tests for the casref library.
//
// These tests resolve resource references against a real Cassandra node
// and run round-trip queries through the resulting sessions.
//
// # Running Integration Tests
//
// Integration tests are skipped by default when using the -short flag:
//
//	go test -short ./...           # Skips integration tests
//	go test ./test/integration/... # Runs integration tests
//
// They require Docker and use testcontainers to spin up a Cassandra
// instance, so they are slower and more resource-intensive than the
// unit tests. Set SKIP_INTEGRATION_TESTS=1 to skip container setup in
// environments without Docker.
package integration_test
