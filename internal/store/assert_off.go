//go:build !debug

package store

// assertState is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertState(string, *Store) {}

// assertCapacity is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertCapacity(string, int, int) {}

// assertSpan is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertSpan(string, int, int, int) {}
