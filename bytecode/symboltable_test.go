package bytecode

import (
	"strconv"
	"testing"
)

func TestSymbolTableInternAssignsInsertionOrder(t *testing.T) {
	st := NewSymbolTable()

	id0, err := st.Intern("x")
	if err != nil {
		t.Fatalf("Intern(x) error: %v", err)
	}
	if id0 != 0 {
		t.Errorf("id0 = %d, want 0", id0)
	}

	id1, err := st.Intern("y")
	if err != nil {
		t.Fatalf("Intern(y) error: %v", err)
	}
	if id1 != 1 {
		t.Errorf("id1 = %d, want 1", id1)
	}
}

func TestSymbolTableInternDedup(t *testing.T) {
	st := NewSymbolTable()
	id0, _ := st.Intern("x")
	id1, _ := st.Intern("x")
	if id0 != id1 {
		t.Errorf("re-interning x got %d, want %d", id1, id0)
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}

func TestSymbolTableNameAt(t *testing.T) {
	st := NewSymbolTable()
	st.Intern("a")
	st.Intern("b")

	name, ok := st.NameAt(1)
	if !ok || name != "b" {
		t.Errorf("NameAt(1) = %q, %v; want b, true", name, ok)
	}

	if _, ok := st.NameAt(5); ok {
		t.Errorf("NameAt(5) ok = true, want false")
	}
}

func TestSymbolTableBoundary(t *testing.T) {
	st := NewSymbolTable()
	for i := 0; i < MaxTableEntries; i++ {
		name := "s" + strconv.Itoa(i)
		if _, err := st.Intern(name); err != nil {
			t.Fatalf("Intern #%d failed unexpectedly: %v", i, err)
		}
	}
	if st.Len() != MaxTableEntries {
		t.Fatalf("Len() = %d, want %d", st.Len(), MaxTableEntries)
	}
	if _, err := st.Intern("one-too-many"); err != ErrTooManyNames {
		t.Errorf("Intern at capacity error = %v, want ErrTooManyNames", err)
	}
}
