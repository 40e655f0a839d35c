package malloc

import "unsafe"

import "github.com/bnclabs/goarena/api"

// Heap adapts the Go heap to the api.Allocator interface. It is
// stateless, the default backing allocator for dynamic arenas, and the
// baseline allocator in tests. Regions come from the runtime already
// zero-initialized; Free is a no-op since reclamation belongs to the
// runtime. Heap exhaustion is fatal in the runtime itself, so Dispatch
// never observes, or returns, a failed allocation.
type Heap struct{}

// NewHeap return the heap adapter.
func NewHeap() *Heap {
	return &Heap{}
}

// Dispatch implement api.Allocator{} interface.
func (heap *Heap) Dispatch(
	mode api.Mode, size, alignment int64, old []byte) []byte {

	switch mode {
	case api.ModeAlloc:
		return heapalloc(size, alignment)

	case api.ModeFree:
		return nil

	case api.ModeResize:
		if len(old) == 0 {
			return heapalloc(size, alignment)
		} else if size == int64(len(old)) {
			return old
		}
		// Fresh regions are zeroed, so growth's tail and shrink's
		// abandoned bytes need no further handling.
		block := heapalloc(size, alignment)
		copy(block, old)
		return block
	}
	panicerr("unknown dispatch mode %v", mode)
	return nil
}

// heapalloc over-allocates by alignment bytes and shifts the region's
// base to the next aligned address. The full slice stays reachable
// through the returned sub-slice, keeping the region alive.
func heapalloc(size, alignment int64) []byte {
	buf := make([]byte, size+alignment)
	addr := int64(uintptr(unsafe.Pointer(&buf[0])))
	shift := alignup(addr, alignment) - addr
	return buf[shift : shift+size : shift+size]
}
