package lib_test

import "testing"

import "github.com/bnclabs/goarena/lib"
import "github.com/bnclabs/goarena/malloc"

func TestBitset(t *testing.T) {
	bs := lib.NewBitset(malloc.NewHeap(), 64)
	for i := int64(0); i < 64; i += 2 {
		bs.Setbit(i)
	}
	if x := bs.Count(); x != 32 {
		t.Errorf("expected %v, got %v", 32, x)
	}
	for i := int64(0); i < 64; i++ {
		if x := bs.Isbit(i); x != (i%2 == 0) {
			t.Fatalf("bit %v expected %v, got %v", i, i%2 == 0, x)
		}
	}
	bs.Clearbit(0)
	if bs.Isbit(0) {
		t.Errorf("expected bit 0 clear")
	} else if x := bs.Count(); x != 31 {
		t.Errorf("expected %v, got %v", 31, x)
	}
}

func TestBitsetGrow(t *testing.T) {
	bs := lib.NewBitset(malloc.NewHeap(), 8)
	bs.Setbit(3)
	// setting past the range grows the storage; existing and fresh
	// bits keep their values.
	bs.Setbit(1000)
	if !bs.Isbit(3) {
		t.Errorf("expected bit 3 set")
	} else if !bs.Isbit(1000) {
		t.Errorf("expected bit 1000 set")
	} else if x := bs.Count(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
	// bits past the range read as clear.
	if bs.Isbit(100000) {
		t.Errorf("expected bit 100000 clear")
	}
	bs.Clearbit(100000) // no-op past the range
}

func TestBitsetOverArena(t *testing.T) {
	arena := malloc.NewDynamicArena(
		"bitset", malloc.Defaultsettings(), nil)
	bs := lib.NewBitset(arena, 128)
	for i := int64(0); i < 128; i++ {
		bs.Setbit(i)
	}
	if x := bs.Count(); x != 128 {
		t.Errorf("expected %v, got %v", 128, x)
	}
	arena.Release()
}
