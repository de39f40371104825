package bytecode

import "testing"

func TestValueTableInternDedupByKindAndPayload(t *testing.T) {
	vt := NewValueTable()

	idNum, _ := vt.Intern(NumberValue(42))
	idStr, _ := vt.Intern(StringValue("42.000000"))
	if idNum == idStr {
		t.Errorf("Number(42) and String(%q) shared an id; a Number and a String with the same text must be distinct entries", FormatNumber(42))
	}

	idNumAgain, _ := vt.Intern(NumberValue(42))
	if idNumAgain != idNum {
		t.Errorf("re-interning Number(42) got %d, want %d", idNumAgain, idNum)
	}

	if vt.Len() != 2 {
		t.Errorf("Len() = %d, want 2", vt.Len())
	}
}

func TestValueTablePageAddrDistinctFromNumber(t *testing.T) {
	vt := NewValueTable()
	idPage, _ := vt.Intern(PageAddrValue(1))
	idNum, _ := vt.Intern(NumberValue(1))
	if idPage == idNum {
		t.Errorf("PageAddr(1) and Number(1) shared an id %d", idPage)
	}
}

func TestFormatNumberMatchesLiteralScenario(t *testing.T) {
	if got := FormatNumber(42); got != "42.000000" {
		t.Errorf("FormatNumber(42) = %q, want 42.000000", got)
	}
}

func TestValueTableAt(t *testing.T) {
	vt := NewValueTable()
	id, _ := vt.Intern(StringValue("hello"))
	v, ok := vt.At(id)
	if !ok || v.String != "hello" {
		t.Errorf("At(%d) = %+v, %v; want hello, true", id, v, ok)
	}
}
