// Package linkcheck finds dangling symbolic links inside an environment
// components directory.
//
// The work is split in three steps that run strictly forward:
//
//   - Scanner lists every path under the root that sits below a nested
//     node_modules/@bit directory, once each. Dot-prefixed entries such as
//     the package store are skipped. It only tells directories from the
//     rest, to know where to descend.
//   - Resolver classifies one path: not a link, link with existing target,
//     link with missing target, or a resolution error.
//   - Collector resolves all candidates concurrently, joins, and turns the
//     outcomes into BrokenSymlink and UnresolvedLink values in input order.
//
// PathToDelete maps a broken link to the top-level environment directory
// whose removal makes the package manager reinstall it. It is a pure string
// function and never touches the filesystem.
//
// Nothing in this package writes to the filesystem.
package linkcheck
