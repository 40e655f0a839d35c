package lib

import "github.com/bnclabs/goarena/api"

// Array is a growable list of fixed-size byte records whose storage
// comes from an api.Allocator. Pushing past capacity resizes the
// storage to max(capacity*2, 4) records; existing records are carried
// over by the allocator's content-preserving resize. Growth is
// amortized O(1) only when the allocator resizes efficiently, which
// holds for arenas' tail allocations and for the Heap.
type Array struct {
	alloc    api.Allocator
	storage  []byte
	itemsize int64
	length   int64 // records in use
	capacity int64 // records the storage can hold
}

// NewArray create an array of itemsize byte records with an initial
// capacity, zero for lazy allocation on first push.
func NewArray(alloc api.Allocator, itemsize, capacity int64) *Array {
	if alloc == nil {
		panicerr("nil allocator")
	} else if itemsize <= 0 {
		panicerr("invalid itemsize %v", itemsize)
	} else if capacity < 0 {
		panicerr("invalid capacity %v", capacity)
	}
	arr := &Array{alloc: alloc, itemsize: itemsize}
	if capacity > 0 {
		size := capacity * itemsize
		arr.storage = api.Alloc(alloc, size, api.DefaultAlignment)
		arr.capacity = capacity
	}
	return arr
}

// Push append a record.
func (arr *Array) Push(item []byte) {
	if int64(len(item)) != arr.itemsize {
		panicerr("item size %v expected %v", len(item), arr.itemsize)
	}
	if arr.length == arr.capacity {
		newcap := arr.capacity * 2
		if newcap < 4 {
			newcap = 4
		}
		size := newcap * arr.itemsize
		arr.storage = api.Resize(
			arr.alloc, arr.storage, size, api.DefaultAlignment)
		arr.capacity = newcap
	}
	off := arr.length * arr.itemsize
	copy(arr.storage[off:off+arr.itemsize], item)
	arr.length++
}

// Pop remove the last record and return it, copied into dst. Use nil
// dst to allocate one from the Go heap.
func (arr *Array) Pop(dst []byte) []byte {
	if arr.length == 0 {
		panicerr("pop on empty array")
	}
	arr.length--
	off := arr.length * arr.itemsize
	dst = Fixbuffer(dst, arr.itemsize)
	copy(dst, arr.storage[off:off+arr.itemsize])
	return dst
}

// Index return a view over the i'th record, valid until the array next
// grows.
func (arr *Array) Index(i int64) []byte {
	if i < 0 || i >= arr.length {
		panicerr("index %v out of range %v", i, arr.length)
	}
	off := i * arr.itemsize
	return arr.storage[off : off+arr.itemsize]
}

// Set overwrite the i'th record.
func (arr *Array) Set(i int64, item []byte) {
	if int64(len(item)) != arr.itemsize {
		panicerr("item size %v expected %v", len(item), arr.itemsize)
	}
	copy(arr.Index(i), item)
}

// Insert a record at i, shifting later records up by one.
func (arr *Array) Insert(i int64, item []byte) {
	if i < 0 || i > arr.length {
		panicerr("index %v out of range %v", i, arr.length)
	}
	arr.Push(item)
	for j := arr.length - 1; j > i; j-- {
		copy(arr.Index(j), arr.Index(j-1))
	}
	copy(arr.Index(i), item)
}

// RemoveUnordered remove the i'th record and return it, copied into
// dst. The last record takes its place, so record order is not
// preserved.
func (arr *Array) RemoveUnordered(i int64, dst []byte) []byte {
	if i < 0 || i >= arr.length {
		panicerr("index %v out of range %v", i, arr.length)
	}
	dst = Fixbuffer(dst, arr.itemsize)
	copy(dst, arr.Index(i))
	if last := arr.length - 1; i < last {
		copy(arr.Index(i), arr.Index(last))
	}
	arr.length--
	return dst
}

// Clear drop every record, keeping the storage.
func (arr *Array) Clear() {
	arr.length = 0
}

// Len number of records.
func (arr *Array) Len() int64 {
	return arr.length
}

// Capacity records the current storage can hold.
func (arr *Array) Capacity() int64 {
	return arr.capacity
}
