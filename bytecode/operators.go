package bytecode

// OperatorInfo describes one entry in the fixed operator table. Index
// position in Operators is the op_index encoded as
// FIRST_OPERATOR+op_index; reordering this slice changes the bytecode
// format.
type OperatorInfo struct {
	Name      string
	Symbol    string
	Chainable bool
}

// Operators is the fixed, ordered operator table, lifted from
// ArkScript's own instruction set rather than invented: it is the
// authoritative source for which symbols are operators versus plain
// function calls, and which of those may be chained with more than two
// arguments via a left fold.
var Operators = []OperatorInfo{
	{"ADD", "+", true},
	{"SUB", "-", true},
	{"MUL", "*", true},
	{"DIV", "/", true},
	{"GT", ">", false},
	{"LT", "<", false},
	{"LE", "<=", false},
	{"GE", ">=", false},
	{"NEQ", "!=", false},
	{"EQ", "=", false},
	{"LEN", "len", false},
	{"EMPTY", "empty", false},
	{"TAIL", "tail", false},
	{"HEAD", "head", false},
	{"ISNIL", "isnil", false},
	{"ASSERT", "assert", false},
	{"TO_NUM", "toNumber", false},
	{"TO_STR", "toString", false},
	{"AT", "at", false},
	{"AND_", "and", true},
	{"OR_", "or", true},
	{"MOD", "%", true},
	{"TYPE", "type", false},
	{"HASFIELD", "hasField", false},
	{"NOT", "not", false},
}

// operatorBySymbol is built once for OperatorIndex's lookup.
var operatorBySymbol = func() map[string]int {
	m := make(map[string]int, len(Operators))
	for i, op := range Operators {
		m[op.Symbol] = i
	}
	return m
}()

// OperatorIndex returns the table index of symbol and ok=true if it
// names an operator, so the lowering dispatcher can tell operators
// apart from ordinary function calls and builtins.
func OperatorIndex(symbol string) (index int, ok bool) {
	i, ok := operatorBySymbol[symbol]
	return i, ok
}

// OperatorOpcode returns the opcode for the operator at table index i.
func OperatorOpcode(i int) Instruction {
	return FIRST_OPERATOR + Instruction(i)
}

// IsChainable reports whether symbol may be applied to more than two
// arguments via a left fold (e.g. (+ a b c d)). Operators outside this
// set reject more than two arguments.
func IsChainable(symbol string) bool {
	i, ok := operatorBySymbol[symbol]
	if !ok {
		return false
	}
	return Operators[i].Chainable
}

// OperatorForOpcode reverses OperatorOpcode: given a bare operator
// opcode, returns its table entry.
func OperatorForOpcode(op Instruction) (OperatorInfo, bool) {
	if !op.IsOperator() {
		return OperatorInfo{}, false
	}
	return Operators[op-FIRST_OPERATOR], true
}
