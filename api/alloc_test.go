package api

import "testing"

// records the last dispatch so helper pass-through can be verified.
type mockalloc struct {
	mode      Mode
	size      int64
	alignment int64
	old       []byte
	block     []byte
}

func (m *mockalloc) Dispatch(
	mode Mode, size, alignment int64, old []byte) []byte {

	m.mode, m.size, m.alignment, m.old = mode, size, alignment, old
	if mode == ModeFree {
		return nil
	}
	m.block = make([]byte, size)
	return m.block
}

func TestAlloc(t *testing.T) {
	m := &mockalloc{}
	block := Alloc(m, 100, 8)
	if m.mode != ModeAlloc {
		t.Errorf("expected %v, got %v", ModeAlloc, m.mode)
	} else if m.size != 100 || m.alignment != 8 {
		t.Errorf("unexpected args %v %v", m.size, m.alignment)
	} else if m.old != nil {
		t.Errorf("expected nil old")
	} else if len(block) != 100 {
		t.Errorf("expected %v, got %v", 100, len(block))
	}
}

func TestFree(t *testing.T) {
	m := &mockalloc{}
	block := Alloc(m, 10, 8)
	Free(m, block)
	if m.mode != ModeFree {
		t.Errorf("expected %v, got %v", ModeFree, m.mode)
	} else if &m.old[0] != &block[0] {
		t.Errorf("expected old to be the freed block")
	}
}

func TestResize(t *testing.T) {
	m := &mockalloc{}
	block := Alloc(m, 10, 8)
	newblock := Resize(m, block, 20, 8)
	if m.mode != ModeResize {
		t.Errorf("expected %v, got %v", ModeResize, m.mode)
	} else if m.size != 20 {
		t.Errorf("expected %v, got %v", 20, m.size)
	} else if len(newblock) != 20 {
		t.Errorf("expected %v, got %v", 20, len(newblock))
	}
}

func TestBadContract(t *testing.T) {
	m := &mockalloc{}
	// non power of two alignment.
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		Alloc(m, 10, 3)
	}()
	// zero alignment.
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		Alloc(m, 10, 0)
	}()
	// non-positive size.
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		Alloc(m, 0, 8)
	}()
	// resize checks the same contract.
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		Resize(m, nil, 10, 6)
	}()
}

func TestIdentity(t *testing.T) {
	m1, m2 := &mockalloc{}, &mockalloc{}
	var a1, a2, a3 Allocator = m1, m2, m1
	if a1 == a2 {
		t.Errorf("distinct contexts compare equal")
	}
	if a1 != a3 {
		t.Errorf("same dispatch and context compare unequal")
	}
}
