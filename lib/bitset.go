package lib

import "github.com/bnclabs/goarena/api"

// Bitset is a growable set of bits, storage obtained from an
// api.Allocator. Setting a bit past the current range resizes the
// storage; the allocator contract keeps fresh tail bytes zeroed, so new
// bits start clear.
type Bitset struct {
	alloc   api.Allocator
	storage []byte
}

// NewBitset create a bit set holding at least nbits bits, all clear.
func NewBitset(alloc api.Allocator, nbits int64) *Bitset {
	if alloc == nil {
		panicerr("nil allocator")
	} else if nbits <= 0 {
		panicerr("invalid nbits %v", nbits)
	}
	size := ceil(nbits, 8)
	return &Bitset{
		alloc:   alloc,
		storage: api.Alloc(alloc, size, api.DefaultAlignment),
	}
}

// Setbit set the nthbit, growing the storage when the bit falls past
// the current range.
func (bs *Bitset) Setbit(nthbit int64) {
	if nthbit < 0 {
		panicerr("invalid bit %v", nthbit)
	}
	if byteoff := nthbit >> 3; byteoff >= int64(len(bs.storage)) {
		size := int64(len(bs.storage)) * 2
		if size <= byteoff {
			size = byteoff + 1
		}
		bs.storage = api.Resize(
			bs.alloc, bs.storage, size, api.DefaultAlignment)
	}
	bs.storage[nthbit>>3] |= 1 << uint(nthbit&7)
}

// Clearbit clear the nthbit. Bits past the current range are already
// clear.
func (bs *Bitset) Clearbit(nthbit int64) {
	if nthbit < 0 {
		panicerr("invalid bit %v", nthbit)
	}
	if byteoff := nthbit >> 3; byteoff < int64(len(bs.storage)) {
		bs.storage[byteoff] &^= 1 << uint(nthbit&7)
	}
}

// Isbit return whether the nthbit is set.
func (bs *Bitset) Isbit(nthbit int64) bool {
	if nthbit < 0 {
		panicerr("invalid bit %v", nthbit)
	}
	byteoff := nthbit >> 3
	if byteoff >= int64(len(bs.storage)) {
		return false
	}
	return bs.storage[byteoff]&(1<<uint(nthbit&7)) != 0
}

// Count number of set bits.
func (bs *Bitset) Count() int64 {
	count := int64(0)
	for _, b := range bs.storage {
		for ; b > 0; b &= b - 1 {
			count++
		}
	}
	return count
}

func ceil(divident, divisor int64) int64 {
	if divident%divisor == 0 {
		return divident / divisor
	}
	return (divident / divisor) + 1
}
