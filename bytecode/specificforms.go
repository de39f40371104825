package bytecode

// SpecificForms maps the handful of syntactic forms lowered straight
// to a dedicated opcode rather than a general call.
var SpecificForms = map[string]Instruction{
	"list":     LIST,
	"append":   APPEND,
	"append!":  APPEND_IN_PLACE,
	"concat":   CONCAT,
	"concat!":  CONCAT_IN_PLACE,
	"pop":      POP,
}

// SpecificFormOpcode returns the opcode for name and ok=true if name
// names a specific form.
func SpecificFormOpcode(name string) (Instruction, bool) {
	i, ok := SpecificForms[name]
	return i, ok
}
