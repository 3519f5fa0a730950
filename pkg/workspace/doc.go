// Package workspace locates the workspace a command runs in and the
// directories inside its scope.
//
// The workspace root is the closest directory, walking up from the start
// directory, that holds one of the workspace marker files. The scope lives in
// one of the scope directories below the root, and installed component
// environments live in the components directory of the scope.
package workspace
