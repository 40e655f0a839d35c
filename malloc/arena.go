package malloc

import "unsafe"

import "github.com/bnclabs/goarena/api"

// Arena is a bump-pointer allocator over a single caller-supplied
// buffer of fixed capacity. Allocation moves a monotonic offset; only
// the most recent allocation can be resized in place; individual frees
// are no-ops and memory is reclaimed wholesale by Reset. The caller
// owns the backing buffer and its lifetime.
type Arena struct {
	data   []byte
	offset int64
}

// NewArena create a linear arena over buf. The buffer is zero-filled
// here so that every region the arena hands out is zero-initialized,
// given that bumping is monotonic and the shrink paths zero what they
// free.
func NewArena(buf []byte) *Arena {
	if len(buf) == 0 {
		panicerr("arena buffer is empty")
	}
	zeroout(buf)
	return &Arena{data: buf}
}

//---- operations

// Alloc a zero-initialized region of size bytes at the next offset
// aligned to alignment. Panics ErrorOutofMemory when the arena cannot
// hold it: linear arenas are for pre-sized scopes and running out is a
// sizing bug, not a recoverable condition.
func (arena *Arena) Alloc(size, alignment int64) []byte {
	if arena.data == nil {
		panicerr("arena released")
	}
	aligned := alignup(arena.offset, alignment)
	newoff := aligned + size
	if newoff > int64(len(arena.data)) {
		panic(ErrorOutofMemory)
	}
	arena.offset = newoff
	return arena.data[aligned:newoff:newoff]
}

// Resize old to size bytes. When old is the arena's most recent
// allocation the offset is adjusted in place and the same region is
// returned; shrinking zeroes the freed tail. Any earlier allocation
// falls through to a fresh Alloc plus copy, and the old region stays
// wasted until the next Reset. A nil old behaves as Alloc.
func (arena *Arena) Resize(old []byte, size, alignment int64) []byte {
	if arena.data == nil {
		panicerr("arena released")
	}
	if len(old) == 0 {
		return arena.Alloc(size, alignment)
	}
	oldsize := int64(len(old))
	if uintptr(unsafe.Pointer(&old[0]))&uintptr(alignment-1) != 0 {
		panicerr("old region not aligned to %v", alignment)
	}

	// in-place only for the most recent allocation.
	start := arena.offset - oldsize
	if start >= 0 && &old[0] == &arena.data[start] {
		newoff := start + size
		if newoff > int64(len(arena.data)) {
			panic(ErrorOutofMemory)
		}
		if size < oldsize {
			zeroout(arena.data[newoff:arena.offset])
		}
		arena.offset = newoff
		return arena.data[start:newoff:newoff]
	}

	block := arena.Alloc(size, alignment)
	copy(block, old)
	return block
}

// Dispatch implement api.Allocator{} interface.
func (arena *Arena) Dispatch(
	mode api.Mode, size, alignment int64, old []byte) []byte {

	switch mode {
	case api.ModeAlloc:
		return arena.Alloc(size, alignment)

	case api.ModeFree:
		return nil

	case api.ModeResize:
		return arena.Resize(old, size, alignment)
	}
	panicerr("unknown dispatch mode %v", mode)
	return nil
}

// Reset the arena for reuse, zero-filling the buffer. Zeroing trades
// performance for catching use-after-reset reads deterministically.
func (arena *Arena) Reset() {
	if arena.data == nil {
		panicerr("arena released")
	}
	arena.offset = 0
	zeroout(arena.data)
}

// Release the arena. The backing buffer remains caller-owned; the arena
// itself becomes unusable and any further operation panics.
func (arena *Arena) Release() {
	if arena.data == nil {
		panicerr("arena released")
	}
	arena.data, arena.offset = nil, 0
}

//---- statistics

// Offset return the current bump cursor, which equals the sum of
// aligned sizes allocated since the last Reset.
func (arena *Arena) Offset() int64 {
	return arena.offset
}

// Capacity of the backing buffer.
func (arena *Arena) Capacity() int64 {
	return int64(len(arena.data))
}

// Available bytes remaining, ignoring alignment padding of future
// allocations.
func (arena *Arena) Available() int64 {
	return int64(len(arena.data)) - arena.offset
}
