// Package api defines the allocation interface shared by all allocators
// and by every data structure that consumes them. Types and functions
// exported by this package are not thread safe.
package api

// Mode selects the operation performed by a single Dispatch call.
type Mode byte

const (
	// ModeAlloc allocate a fresh zero-initialized region.
	ModeAlloc Mode = iota + 1
	// ModeFree release a region back to the allocator.
	ModeFree
	// ModeResize grow or shrink a region, preserving its content.
	ModeResize
)

// DefaultAlignment for allocations that have no stricter requirement.
// Sufficient for every primitive type on 64-bit platforms.
const DefaultAlignment = int64(8)

// Allocator is the single-dispatch allocation interface. All three
// operations go through one Dispatch call parameterized by mode, so an
// allocator is passed around as one plain value and consumers never
// need to know which kind they hold. Two Allocator values name the same
// allocator iff they compare equal, that is same dispatch type and same
// context pointer.
//
// Memory regions are []byte values; a region's length is its size.
// Depending on mode:
//
//	ModeAlloc  : size, alignment used; old ignored. Returns a
//	             zero-initialized region of `size` bytes aligned
//	             to `alignment`.
//	ModeFree   : old used; rest ignored. Returns nil. For bump style
//	             allocators this is a no-op, memory is reclaimed only
//	             on Reset/Release.
//	ModeResize : all arguments used. Returns a region of `size` bytes
//	             whose first min(len(old), size) bytes equal old's
//	             content. May return the same region (in-place) or a
//	             fresh one (copied).
//
// Contract violations (non-power-of-two alignment, non-positive size,
// use after release, out-of-memory in a fixed-capacity arena) panic.
// Allocation failure is never returned as a recoverable error.
type Allocator interface {
	Dispatch(mode Mode, size, alignment int64, old []byte) []byte
}

// Alloc allocate a zero-initialized region of size bytes aligned to
// alignment, which must be a power of two.
func Alloc(a Allocator, size, alignment int64) []byte {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		panicerr("alignment %v is not a power of 2", alignment)
	} else if size <= 0 {
		panicerr("invalid allocation size %v", size)
	}
	return a.Dispatch(ModeAlloc, size, alignment, nil)
}

// Free release a region obtained from the same allocator. Legal no-op
// for bump allocators. Never fails.
func Free(a Allocator, old []byte) {
	a.Dispatch(ModeFree, 0, 0, old)
}

// Resize grow or shrink a region to size bytes, preserving the first
// min(len(old), size) bytes. Growing zero-fills the added tail;
// shrinking in place zeroes the bytes beyond the new size. A nil old
// behaves as Alloc.
func Resize(a Allocator, old []byte, size, alignment int64) []byte {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		panicerr("alignment %v is not a power of 2", alignment)
	} else if size <= 0 {
		panicerr("invalid allocation size %v", size)
	}
	return a.Dispatch(ModeResize, size, alignment, old)
}
