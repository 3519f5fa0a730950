// Package brokensymlinks implements the "Check invalid link files"
// diagnosis.
//
// Installing components creates symbolic links under
// <components dir>/<env>/node_modules/@bit. When an install is interrupted or
// its store is pruned, those links are left pointing at nothing and the
// environment stops resolving. The diagnosis finds such links and recommends
// deleting each affected environment directory so the next install recreates
// it. It never deletes anything itself.
package brokensymlinks
