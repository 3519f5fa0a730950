// Package types holds the small interfaces shared across bitdoctor packages.
package types
