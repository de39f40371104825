// Package bytecode defines the ArkScript instruction set, the tables
// symbols and values intern into, the page-based code layout, and the
// low-level emitter that writes big-endian words into either.
package bytecode

import "fmt"

// Instruction is a single opcode byte. Loads, bindings, jumps, calls,
// and the aggregate opcodes other than POP are followed by a big-endian
// 16-bit immediate; RET, HALT, POP, and every operator stand alone.
type Instruction byte

const (
	LOAD_SYMBOL Instruction = 0x01
	LOAD_CONST  Instruction = 0x02
	BUILTIN     Instruction = 0x03
	GET_FIELD   Instruction = 0x04
)

const (
	LET     Instruction = 0x05
	MUT     Instruction = 0x06
	STORE   Instruction = 0x07
	DEL     Instruction = 0x08
	CAPTURE Instruction = 0x09
)

const (
	JUMP              Instruction = 0x0A
	POP_JUMP_IF_TRUE  Instruction = 0x0B
	POP_JUMP_IF_FALSE Instruction = 0x0C
	RET               Instruction = 0x0D
	HALT              Instruction = 0x0E
)

const (
	CALL   Instruction = 0x0F
	PLUGIN Instruction = 0x10
)

const (
	LIST            Instruction = 0x11
	APPEND          Instruction = 0x12
	APPEND_IN_PLACE Instruction = 0x13
	CONCAT          Instruction = 0x14
	CONCAT_IN_PLACE Instruction = 0x15
	POP             Instruction = 0x16
)

// FIRST_OPERATOR is the base of the contiguous operator range
// [FIRST_OPERATOR, FIRST_OPERATOR+len(Operators)). Each operator opcode
// stands alone; the VM knows its arity.
const FIRST_OPERATOR Instruction = 0x17

// Structural markers written only into the artifact stream (never into
// a code page): they delimit the symbol table, value table, and code
// segments, and tag value-table entry kinds. Placed well above the
// operator range so they can never collide with it.
const (
	CODE_SEGMENT_START Instruction = 0xF0
	SYM_TABLE_START    Instruction = 0xF1
	VAL_TABLE_START    Instruction = 0xF2
	NUMBER_TYPE        Instruction = 0xF3
	STRING_TYPE        Instruction = 0xF4
	FUNC_TYPE          Instruction = 0xF5
)

// instInfo mirrors the teacher's opcodeTable: per-opcode metadata (the
// mnemonic and the immediate's size) read by Name and OperandBytes, not
// used for execution (the VM is out of scope).
type instInfo struct {
	Name         string
	OperandBytes int // 0 or 2 (one big-endian 16-bit word)
}

var instTable = map[Instruction]instInfo{
	LOAD_SYMBOL:        {"LOAD_SYMBOL", 2},
	LOAD_CONST:         {"LOAD_CONST", 2},
	BUILTIN:            {"BUILTIN", 2},
	GET_FIELD:          {"GET_FIELD", 2},
	LET:                {"LET", 2},
	MUT:                {"MUT", 2},
	STORE:              {"STORE", 2},
	DEL:                {"DEL", 2},
	CAPTURE:            {"CAPTURE", 2},
	JUMP:               {"JUMP", 2},
	POP_JUMP_IF_TRUE:   {"POP_JUMP_IF_TRUE", 2},
	POP_JUMP_IF_FALSE:  {"POP_JUMP_IF_FALSE", 2},
	RET:                {"RET", 0},
	HALT:               {"HALT", 0},
	CALL:               {"CALL", 2},
	PLUGIN:             {"PLUGIN", 2},
	LIST:               {"LIST", 2},
	APPEND:             {"APPEND", 2},
	APPEND_IN_PLACE:    {"APPEND_IN_PLACE", 2},
	CONCAT:             {"CONCAT", 2},
	CONCAT_IN_PLACE:    {"CONCAT_IN_PLACE", 2},
	POP:                {"POP", 0},
	CODE_SEGMENT_START: {"CODE_SEGMENT_START", 0},
	SYM_TABLE_START:    {"SYM_TABLE_START", 0},
	VAL_TABLE_START:    {"VAL_TABLE_START", 0},
}

// Name returns a human-readable mnemonic, falling back to the operator
// table for opcodes in the operator range.
func (i Instruction) Name() string {
	if info, ok := instTable[i]; ok {
		return info.Name
	}
	if i >= FIRST_OPERATOR && int(i-FIRST_OPERATOR) < len(Operators) {
		return Operators[i-FIRST_OPERATOR].Name
	}
	return fmt.Sprintf("UNKNOWN_%#02x", byte(i))
}

// OperandBytes returns the size of this opcode's immediate, 0 for
// opcodes (including every operator) that stand alone.
func (i Instruction) OperandBytes() int {
	if info, ok := instTable[i]; ok {
		return info.OperandBytes
	}
	return 0
}

func (i Instruction) String() string { return i.Name() }

// IsOperator reports whether i falls in the operator range.
func (i Instruction) IsOperator() bool {
	return i >= FIRST_OPERATOR && int(i-FIRST_OPERATOR) < len(Operators)
}
