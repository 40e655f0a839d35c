// Package malloc supplies bump-pointer memory management built on the
// api.Allocator interface, with a limited scope:
//
//   - Types and Functions exported by this package are not thread safe.
//     Every allocator instance has exactly one logical owner at a time.
//   - Allocators never reclaim individual allocations. Free is a no-op
//     for arenas; memory is reclaimed wholesale on Reset or Release.
//   - Allocation failure in a fixed-capacity arena, and every contract
//     violation (bad alignment, use after Release), is a panic and not
//     a recoverable error. Arenas are meant for short-lived, pre-sized
//     scopes where running out indicates a sizing bug.
//
// Three allocators are provided. Arena bumps an offset over one
// caller-supplied buffer and can resize its most recent allocation in
// place. DynamicArena chains fixed-capacity blocks obtained from a
// backing allocator, growing by prepending a block when the current one
// is exhausted. Heap adapts the Go heap to the same interface and is
// the default backing for dynamic arenas.
//
// Allocators compose by nesting: a DynamicArena's backing allocator may
// be the Heap, a linear Arena, or another DynamicArena.
package malloc
