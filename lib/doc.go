// Package lib supplies data structures that obtain their storage
// through the api.Allocator interface, along with small helpers used
// across the library. Types and functions exported by this package are
// not thread safe.
package lib
