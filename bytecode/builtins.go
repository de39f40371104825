package bytecode

// BuiltinInfo describes one entry in the fixed builtin table.
type BuiltinInfo struct {
	Name string
}

// Builtins is the fixed, ordered builtin table. It is headed by "nil"
// so that code depending on builtin index 0 resolving to the nil
// literal keeps working; the remainder follows ArkScript's own
// namespacing convention for list/string/io/time/fs helpers.
var Builtins = []BuiltinInfo{
	{"nil"},
	{"print"},
	{"puts"},
	{"input"},
	{"writeFile"},
	{"readFile"},
	{"fileExists"},
	{"listFiles"},
	{"isDirectory"},
	{"makeDir"},
	{"removeFiles"},
	{"time"},
	{"sleep"},
	{"system"},
	{"exit"},
	{"list:reverse"},
	{"list:find"},
	{"list:slice"},
	{"list:sort"},
	{"list:fill"},
	{"list:setAt"},
	{"str:format"},
	{"str:findSub"},
	{"str:removeAt"},
	{"str:contains"},
	{"str:splitOn"},
	{"str:trim"},
	{"mathsFunction"},
}

var builtinByName = func() map[string]int {
	m := make(map[string]int, len(Builtins))
	for i, b := range Builtins {
		m[b.Name] = i
	}
	return m
}()

// BuiltinIndex returns the table index of name and ok=true if it names
// a builtin.
func BuiltinIndex(name string) (index int, ok bool) {
	i, ok := builtinByName[name]
	return i, ok
}
