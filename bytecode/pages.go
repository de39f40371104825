package bytecode

// Page is one logical code body: the top-level program, a function
// body, or a quotation. Its bytes grow via the Buffer embedded Target.
type Page struct {
	Buffer
}

func newPage() *Page {
	return &Page{}
}

// Len returns the current byte offset within the page, used both as a
// jump target and as the insertion point for a jump placeholder.
func (p *Page) Len() int {
	return len(p.Bytes)
}

// EmitJumpPlaceholder writes inst followed by a two-byte placeholder
// and returns the offset of the placeholder's first byte, to be filled
// in later by PatchU16BE once the jump target is known.
func (p *Page) EmitJumpPlaceholder(inst Instruction) int {
	p.PushByte(byte(inst))
	at := len(p.Bytes)
	p.PushByte(0)
	p.PushByte(0)
	return at
}

// PatchU16BE overwrites the two bytes at offset with v, big-endian.
func (p *Page) PatchU16BE(offset int, v uint16) {
	p.Bytes[offset] = byte(v >> 8)
	p.Bytes[offset+1] = byte(v)
}

// CodePageSet owns the permanent pages that end up in the artifact
// plus a LIFO of ephemeral temp pages used only while compiling a
// general call. Temp pages never appear in the artifact.
type CodePageSet struct {
	pages []*Page
	temps []*Page
}

func NewCodePageSet() *CodePageSet {
	return &CodePageSet{}
}

// NewPage allocates a permanent page and returns its id, which is also
// the page-id payload used by PageAddr value entries.
func (s *CodePageSet) NewPage() uint16 {
	s.pages = append(s.pages, newPage())
	return uint16(len(s.pages) - 1)
}

// Page returns the mutable handle for id. A negative id selects a temp
// page counted from the top of the temp stack: -1 is the current top,
// -2 the one below it, and so on, matching the convention used during
// call-site compilation where the most recently pushed temp page is
// the one being compiled into.
func (s *CodePageSet) Page(id int) *Page {
	if id >= 0 {
		return s.pages[id]
	}
	k := -id
	return s.temps[len(s.temps)-k]
}

// PushTemp allocates a new temp page on top of the stack and returns
// it directly, since temp pages have no table id.
func (s *CodePageSet) PushTemp() *Page {
	p := newPage()
	s.temps = append(s.temps, p)
	return p
}

// PopTemp removes and returns the top temp page.
func (s *CodePageSet) PopTemp() *Page {
	p := s.temps[len(s.temps)-1]
	s.temps = s.temps[:len(s.temps)-1]
	return p
}

// Pages returns the permanent pages in page-id order.
func (s *CodePageSet) Pages() []*Page {
	return s.pages
}

// Len returns the number of permanent pages.
func (s *CodePageSet) Len() int {
	return len(s.pages)
}
