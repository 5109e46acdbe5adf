package rs16

import "testing"

func TestFreeEvictsUnusedFieldTable(t *testing.T) {
	c1, err := Init(8, 0x187, 112, 11, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	c2, err := Init(8, 0x187, 1, 1, 16)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	registryMu.Lock()
	_, shared := fieldTables[fieldKey{8, 0x187}]
	registryMu.Unlock()
	if !shared {
		t.Fatalf("expected a shared field table for gfpoly 0x187")
	}

	Free(c1)

	registryMu.Lock()
	tab, ok := fieldTables[fieldKey{8, 0x187}]
	users := 0
	if ok {
		users = tab.users
	}
	registryMu.Unlock()
	if !ok {
		t.Fatalf("field table evicted too early; c2 still holds a Code built on it")
	}
	if users != 1 {
		t.Fatalf("field table users = %d, want 1 after freeing one of two Codes", users)
	}

	Free(c2)

	registryMu.Lock()
	_, stillThere := fieldTables[fieldKey{8, 0x187}]
	registryMu.Unlock()
	if stillThere {
		t.Fatalf("field table not evicted after its last Code was freed")
	}
}

func TestFreeNilIsNoOp(t *testing.T) {
	Free(nil)
}

func TestFreeUnknownCodeIsNoOp(t *testing.T) {
	c, err := Init(4, 0x13, 0, 1, 4)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Free(c)
	// A second Free of an already-freed Code must not panic or touch
	// another Code that happens to reuse the same memory.
	Free(c)
}
