package compiler

import (
	"path/filepath"
	"strings"

	"github.com/Kannupriyasingh/Ark/ast"
)

// checkUndefinedSymbols runs after lowering completes. A name is
// permitted if it was defined by let/mut or a function parameter, or
// if its prefix before the first ':' matches the file stem of some
// recorded plugin import; anything else is an unbound variable.
func (c *Compiler) checkUndefinedSymbols() error {
	stems := make(map[string]bool, len(c.plugins))
	for _, p := range c.plugins {
		stems[pluginStem(p)] = true
	}

	for _, name := range c.symbols.Names() {
		if c.defined[name] {
			continue
		}
		stem := strings.SplitN(name, ":", 2)[0]
		if stems[stem] {
			continue
		}
		return newError(UndefinedSymbol, ast.Position{}, name,
			"Unbound variable error (variable is used but not defined)")
	}
	return nil
}

func pluginStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
