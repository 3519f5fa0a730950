// Package testutil provides filesystem fixtures for bitdoctor tests:
// an in-memory types.FS with real symlink nodes and error injection,
// a fault-injecting wrapper over any types.FS, and fixture helpers.
package testutil
