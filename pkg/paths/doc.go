// Package paths resolves the per-user directories bitdoctor reads and writes.
// It follows the XDG Base Directory specification and honours the
// BITDOCTOR_CONFIG_DIR and BITDOCTOR_STATE_DIR overrides.
package paths
