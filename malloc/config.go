package malloc

import sigar "github.com/cloudfoundry/gosigar"
import s "github.com/bnclabs/gosettings"

// Defaultblocksize for dynamic arena blocks when free system memory is
// plentiful.
const Defaultblocksize = int64(4 * 1024 * 1024)

// Minblocksize floor for the computed default block size. Explicitly
// configured "minblock" values may go lower, down to Alignment.
const Minblocksize = int64(4 * 1024)

// Maxblocksize maximum size for a single memory block.
const Maxblocksize = int64(1024 * 1024 * 1024)

// Defaultsettings for dynamic arenas.
//
// "minblock" (int64, default: computed)
//		Minimum size of a memory block, and the capacity of the
//		arena's initial block. Must be a multiple of Alignment.
//		Default is Defaultblocksize, scaled down on machines whose
//		free memory cannot comfortably hold it.
func Defaultsettings() s.Settings {
	return s.Settings{
		"minblock": defaultblocksize(),
	}
}

// pick a block size that at most 1/64th of free memory, between
// Minblocksize and Defaultblocksize.
func defaultblocksize() int64 {
	_, _, free := getsysmem()
	blocksize := int64(free / 64)
	if blocksize > Defaultblocksize {
		blocksize = Defaultblocksize
	} else if blocksize < Minblocksize {
		blocksize = Minblocksize
	}
	return (blocksize >> 3) << 3
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
