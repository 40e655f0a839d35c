package lib

import "github.com/bnclabs/goarena/api"

// RingBuffer is a FIFO queue of fixed-size byte records with wraparound
// indices, storage obtained from an api.Allocator. When full it doubles
// its capacity with a plain allocation plus a linearizing copy: the
// wrapped head..tail run is unwrapped into the fresh region, a reshuffle
// that a content-preserving resize cannot express.
type RingBuffer struct {
	alloc    api.Allocator
	storage  []byte
	itemsize int64
	capacity int64 // records
	size     int64 // records in use
	head     int64 // index of the oldest record
	tail     int64 // index where the next record lands
}

// NewRingBuffer create a ring buffer of itemsize byte records.
func NewRingBuffer(alloc api.Allocator, itemsize, capacity int64) *RingBuffer {
	if alloc == nil {
		panicerr("nil allocator")
	} else if itemsize <= 0 {
		panicerr("invalid itemsize %v", itemsize)
	} else if capacity <= 0 {
		panicerr("invalid capacity %v", capacity)
	}
	return &RingBuffer{
		alloc:    alloc,
		storage:  api.Alloc(alloc, capacity*itemsize, api.DefaultAlignment),
		itemsize: itemsize,
		capacity: capacity,
	}
}

// Enqueue append a record at the tail, growing when full.
func (ring *RingBuffer) Enqueue(item []byte) {
	if int64(len(item)) != ring.itemsize {
		panicerr("item size %v expected %v", len(item), ring.itemsize)
	}
	if ring.size == ring.capacity {
		ring.grow()
	}
	off := ring.tail * ring.itemsize
	copy(ring.storage[off:off+ring.itemsize], item)
	ring.tail = (ring.tail + 1) % ring.capacity
	ring.size++
}

// Dequeue remove the oldest record and return it, copied into dst. Use
// nil dst to allocate one from the Go heap.
func (ring *RingBuffer) Dequeue(dst []byte) []byte {
	if ring.size == 0 {
		panicerr("dequeue on empty ring")
	}
	off := ring.head * ring.itemsize
	dst = Fixbuffer(dst, ring.itemsize)
	copy(dst, ring.storage[off:off+ring.itemsize])
	ring.head = (ring.head + 1) % ring.capacity
	ring.size--
	return dst
}

func (ring *RingBuffer) grow() {
	newcap := ring.capacity * 2
	storage := api.Alloc(
		ring.alloc, newcap*ring.itemsize, api.DefaultAlignment)
	for i := int64(0); i < ring.size; i++ {
		from := ((ring.head + i) % ring.capacity) * ring.itemsize
		copy(storage[i*ring.itemsize:], ring.storage[from:from+ring.itemsize])
	}
	api.Free(ring.alloc, ring.storage)
	ring.storage, ring.capacity = storage, newcap
	ring.head, ring.tail = 0, ring.size
}

// Size number of records queued.
func (ring *RingBuffer) Size() int64 {
	return ring.size
}

// Capacity records the current storage can hold.
func (ring *RingBuffer) Capacity() int64 {
	return ring.capacity
}
