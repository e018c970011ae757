// Package types defines the public vocabulary shared by every flexkit package:
// the closed enumeration of value type tags and the typed errors returned by
// the decoder.
//
// Design goals:
//   - Zero-copy navigation; every accessor borrows the caller's buffer.
//   - Small, copyable views (Ref/Vector/Map) instead of object graphs.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories (argument/corrupt/conversion/...).
//
// This package has no dependencies beyond the standard library.
package types
