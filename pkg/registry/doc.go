// Package registry provides a generic, thread-safe registry that keeps
// items in registration order and suggests close names for lookups that
// miss.
package registry
