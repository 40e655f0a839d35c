package malloc

import "fmt"
import "unsafe"

import "github.com/bnclabs/goarena/api"
import "github.com/bnclabs/goarena/lib"
import s "github.com/bnclabs/gosettings"

// memoryblock is one link in a dynamic arena's chain, newest first.
// Within the block, size is the bump cursor over the data payload.
type memoryblock struct {
	data []byte
	size int64
	prev *memoryblock
}

// DynamicArena chains memory blocks obtained from a backing allocator,
// each block a bump arena of its own. When the current block cannot
// hold an allocation a new block of capacity max(minblock, size) is
// prepended to the chain. The arena itself implements api.Allocator, so
// dynamic arenas nest over the Heap, over a linear Arena, or over one
// another.
type DynamicArena struct {
	backing api.Allocator
	current *memoryblock

	// configuration
	minblock  int64
	logprefix string

	// statistics
	nblocks  int64
	navgsize lib.AverageInt64
}

// NewDynamicArena create a dynamic arena, allocating its first block of
// "minblock" bytes from backing. A nil backing defaults to the Heap.
// Settings keys are documented with Defaultsettings.
func NewDynamicArena(
	name string, setts s.Settings, backing api.Allocator) *DynamicArena {

	if backing == nil {
		backing = NewHeap()
	}
	minblock := setts.Int64("minblock")
	if minblock <= 0 || (minblock%Alignment) != 0 {
		panicerr("minblock %v is not a multiple of %v", minblock, Alignment)
	} else if minblock > Maxblocksize {
		panicerr("minblock %v exceeds %v", minblock, Maxblocksize)
	}
	arena := &DynamicArena{
		backing:   backing,
		minblock:  minblock,
		logprefix: fmt.Sprintf("[DYNARENA [%s]]", name),
	}
	arena.current = arena.newblock(minblock, Alignment)
	infof("%v started with minblock %v ...\n", arena.logprefix, minblock)
	return arena
}

func (arena *DynamicArena) newblock(capacity, alignment int64) *memoryblock {
	if alignment < Alignment {
		alignment = Alignment
	}
	arena.nblocks++
	return &memoryblock{data: api.Alloc(arena.backing, capacity, alignment)}
}

//---- operations

// Alloc a zero-initialized region of size bytes aligned to alignment,
// bumping within the current block or spilling to a fresh one.
func (arena *DynamicArena) Alloc(size, alignment int64) []byte {
	if arena.current == nil {
		panicerr("arena released")
	}
	cur := arena.current

	// align the absolute address of the block's cursor.
	base := int64(uintptr(unsafe.Pointer(&cur.data[0])))
	aligned := alignup(base+cur.size, alignment) - base
	if aligned+size <= int64(len(cur.data)) {
		cur.size = aligned + size
		block := cur.data[aligned:cur.size:cur.size]
		zeroout(block)
		arena.navgsize.Add(size)
		return block
	}

	capacity := arena.minblock
	if size > capacity {
		capacity = size
	}
	newblk := arena.newblock(capacity, alignment)
	newblk.prev = cur
	arena.current = newblk
	newblk.size = size
	debugf("%v new block capacity %v\n", arena.logprefix, capacity)

	block := newblk.data[0:size:size]
	zeroout(block)
	arena.navgsize.Add(size)
	return block
}

// Resize old to size bytes. Only the tail allocation of the current
// block can be adjusted in place; allocations living in older blocks
// always go through a fresh Alloc plus copy, even when their block
// would have room, since the chain tracks no recency beyond current.
// Growing past the current block's capacity also falls back to Alloc
// plus copy.
func (arena *DynamicArena) Resize(old []byte, size, alignment int64) []byte {
	if arena.current == nil {
		panicerr("arena released")
	}
	if len(old) == 0 {
		return arena.Alloc(size, alignment)
	}
	oldsize := int64(len(old))
	if uintptr(unsafe.Pointer(&old[0]))&uintptr(alignment-1) != 0 {
		panicerr("old region not aligned to %v", alignment)
	}

	cur := arena.current
	start := cur.size - oldsize
	if start >= 0 && &old[0] == &cur.data[start] {
		if newsize := start + size; newsize <= int64(len(cur.data)) {
			if size < oldsize {
				zeroout(cur.data[newsize:cur.size])
			}
			cur.size = newsize
			return cur.data[start:newsize:newsize]
		}
	}

	block := arena.Alloc(size, alignment)
	copy(block, old)
	return block
}

// Dispatch implement api.Allocator{} interface.
func (arena *DynamicArena) Dispatch(
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

// Reset the arena for reuse. Every block except the oldest goes back to
// the backing allocator; the oldest is zeroed, its cursor rewound, and
// it becomes the current block. Keeping the oldest block means repeated
// per-iteration resets reuse the same storage without touching the
// backing allocator.
func (arena *DynamicArena) Reset() {
	if arena.current == nil {
		panicerr("arena released")
	}
	block := arena.current
	for block.prev != nil {
		prev := block.prev
		api.Free(arena.backing, block.data)
		arena.nblocks--
		block = prev
	}
	block.size = 0
	zeroout(block.data)
	arena.current = block
}

// Release every block back to the backing allocator. The arena becomes
// unusable and any further operation panics.
func (arena *DynamicArena) Release() {
	if arena.current == nil {
		panicerr("arena released")
	}
	arena.Logstats()
	for block := arena.current; block != nil; {
		prev := block.prev
		api.Free(arena.backing, block.data)
		block = prev
	}
	arena.current, arena.nblocks = nil, 0
	infof("%v destroyed\n", arena.logprefix)
}

//---- statistics

// Allocated return the sum of bump cursors across the chain, the bytes
// handed out (plus alignment padding) since the last Reset.
func (arena *DynamicArena) Allocated() int64 {
	allocated := int64(0)
	for block := arena.current; block != nil; block = block.prev {
		allocated += block.size
	}
	return allocated
}

// Info return memory accounting for this arena: total capacity across
// the chain, allocated bytes and number of blocks.
func (arena *DynamicArena) Info() (capacity, allocated, nblocks int64) {
	for block := arena.current; block != nil; block = block.prev {
		capacity += int64(len(block.data))
		allocated += block.size
	}
	return capacity, allocated, arena.nblocks
}
