package lib_test

import "testing"

import "github.com/bnclabs/goarena/lib"
import "github.com/bnclabs/goarena/malloc"

func TestRingBuffer(t *testing.T) {
	ring := lib.NewRingBuffer(malloc.NewHeap(), 8, 4)
	for i := int64(0); i < 4; i++ {
		ring.Enqueue(record(i))
	}
	if x := ring.Size(); x != 4 {
		t.Errorf("expected %v, got %v", 4, x)
	} else if x := ring.Capacity(); x != 4 {
		t.Errorf("expected %v, got %v", 4, x)
	}
	// FIFO order.
	for i := int64(0); i < 4; i++ {
		if x := value(ring.Dequeue(nil)); x != i {
			t.Fatalf("dequeue expected %v, got %v", i, x)
		}
	}

	// panic case
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		ring.Dequeue(nil)
	}()
}

func TestRingBufferWraparound(t *testing.T) {
	ring := lib.NewRingBuffer(malloc.NewHeap(), 8, 4)
	// advance head and tail past the wrap point.
	for i := int64(0); i < 3; i++ {
		ring.Enqueue(record(i))
	}
	ring.Dequeue(nil)
	ring.Dequeue(nil)
	for i := int64(3); i < 6; i++ {
		ring.Enqueue(record(i))
	}
	if x := ring.Size(); x != 4 {
		t.Errorf("expected %v, got %v", 4, x)
	}
	for i := int64(2); i < 6; i++ {
		if x := value(ring.Dequeue(nil)); x != i {
			t.Fatalf("dequeue expected %v, got %v", i, x)
		}
	}
}

func TestRingBufferGrow(t *testing.T) {
	ring := lib.NewRingBuffer(malloc.NewHeap(), 8, 4)
	// wrap, then overflow to force a linearizing copy.
	ring.Enqueue(record(0))
	ring.Enqueue(record(1))
	ring.Dequeue(nil)
	ring.Dequeue(nil)
	for i := int64(2); i < 10; i++ {
		ring.Enqueue(record(i))
	}
	if x := ring.Capacity(); x != 8 {
		t.Errorf("expected %v, got %v", 8, x)
	} else if x := ring.Size(); x != 8 {
		t.Errorf("expected %v, got %v", 8, x)
	}
	for i := int64(2); i < 10; i++ {
		if x := value(ring.Dequeue(nil)); x != i {
			t.Fatalf("dequeue expected %v, got %v", i, x)
		}
	}
}

func BenchmarkRingEnqueue(b *testing.B) {
	ring := lib.NewRingBuffer(malloc.NewHeap(), 8, 1024)
	item := record(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ring.Enqueue(item)
		if ring.Size() == 1024 {
			ring.Dequeue(item)
		}
	}
}
