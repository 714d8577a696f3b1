// Package types defines the error categories and options shared by the
// tomlkit packages.
//
// Design goals:
//   - Typed errors with stable categories (parse/io/index/kind/...).
//   - Bounded parser messages; no shared error buffers.
//   - Options whose zero value is usable.
//
// This package has no dependencies beyond the standard library.
package types
