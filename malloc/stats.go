package malloc

import "github.com/dustin/go-humanize"

// Logstats log the arena's memory accounting in human readable form.
func (arena *DynamicArena) Logstats() {
	capacity, allocated, nblocks := arena.Info()
	cp := humanize.Bytes(uint64(capacity))
	al := humanize.Bytes(uint64(allocated))
	fmsg := "%v blocks:%v capacity:%v allocated:%v\n"
	infof(fmsg, arena.logprefix, nblocks, cp, al)

	if av := &arena.navgsize; av.Samples() > 0 {
		mean := humanize.Bytes(uint64(av.Mean()))
		min := humanize.Bytes(uint64(av.Min()))
		max := humanize.Bytes(uint64(av.Max()))
		fmsg := "%v allocations:%v mean:%v min:%v max:%v\n"
		infof(fmsg, arena.logprefix, av.Samples(), mean, min, max)
	}
}
