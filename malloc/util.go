package malloc

import "errors"
import "fmt"

// ErrorOutofMemory panicked when a fixed-capacity arena cannot satisfy
// an allocation or an in-place resize.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

// Alignment granularity for arena block sizes, also the default
// alignment of block payloads obtained from a backing allocator.
const Alignment = int64(8)

func alignup(offset, alignment int64) int64 {
	return (offset + alignment - 1) &^ (alignment - 1)
}

func zeroout(block []byte) {
	for i := range block {
		block[i] = 0
	}
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
