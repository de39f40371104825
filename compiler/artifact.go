package compiler

import (
	"crypto/sha256"
	"time"

	"github.com/Kannupriyasingh/Ark/ast"
	"github.com/Kannupriyasingh/Ark/bytecode"
)

// buildArtifact assembles the final self-describing byte vector:
// magic, version, timestamp, a SHA-256 hash over everything that
// follows, the symbol and value tables, and one code segment per page.
func (c *Compiler) buildArtifact() ([]byte, error) {
	buf := &bytecode.Buffer{}

	buf.PushByte('a')
	buf.PushByte('r')
	buf.PushByte('k')
	buf.PushByte(0x00)

	for _, v := range c.version {
		bytecode.PushU16BE(buf, v)
	}

	ts := uint64(time.Now().Unix())
	for shift := 56; shift >= 0; shift -= 8 {
		buf.PushByte(byte(ts >> uint(shift)))
	}

	hashAt := len(buf.Bytes)

	bytecode.PushInstruction(buf, bytecode.SYM_TABLE_START)
	bytecode.PushU16BE(buf, uint16(c.symbols.Len()))
	for _, name := range c.symbols.Names() {
		buf.Bytes = append(buf.Bytes, []byte(name)...)
		buf.PushByte(0x00)
	}

	bytecode.PushInstruction(buf, bytecode.VAL_TABLE_START)
	bytecode.PushU16BE(buf, uint16(c.values.Len()))
	for _, v := range c.values.Values() {
		if err := writeValueEntry(buf, v); err != nil {
			return nil, err
		}
	}

	pages := c.pages.Pages()
	if len(pages) == 0 {
		bytecode.PushInstruction(buf, bytecode.CODE_SEGMENT_START)
		bytecode.PushU16BE(buf, 1)
		bytecode.PushInstruction(buf, bytecode.HALT)
	} else {
		for _, p := range pages {
			bytecode.PushInstruction(buf, bytecode.CODE_SEGMENT_START)
			bytecode.PushU16BE(buf, uint16(len(p.Bytes)+1))
			buf.Bytes = append(buf.Bytes, p.Bytes...)
			bytecode.PushInstruction(buf, bytecode.HALT)
		}
	}

	sum := sha256.Sum256(buf.Bytes[hashAt:])
	final := make([]byte, 0, len(buf.Bytes)+len(sum))
	final = append(final, buf.Bytes[:hashAt]...)
	final = append(final, sum[:]...)
	final = append(final, buf.Bytes[hashAt:]...)
	return final, nil
}

func writeValueEntry(buf *bytecode.Buffer, v bytecode.Value) error {
	switch v.Kind {
	case bytecode.ValueNumber:
		bytecode.PushInstruction(buf, bytecode.NUMBER_TYPE)
		buf.Bytes = append(buf.Bytes, []byte(bytecode.FormatNumber(v.Number))...)
		buf.PushByte(0x00)
	case bytecode.ValueString:
		bytecode.PushInstruction(buf, bytecode.STRING_TYPE)
		buf.Bytes = append(buf.Bytes, []byte(v.String)...)
		buf.PushByte(0x00)
	case bytecode.ValuePageAddr:
		bytecode.PushInstruction(buf, bytecode.FUNC_TYPE)
		bytecode.PushU16BE(buf, v.PageAddr)
		buf.PushByte(0x00)
	default:
		return newError(InternalLogic, ast.Position{}, "", "unknown value-table entry kind %d", v.Kind)
	}
	return nil
}
