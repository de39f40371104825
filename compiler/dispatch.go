package compiler

import (
	"github.com/Kannupriyasingh/Ark/ast"
	"github.com/Kannupriyasingh/Ark/bytecode"
)

// compile lowers a single AST node into page, dispatching on node kind
// and, for lists, on the kind of their head.
func (c *Compiler) compile(node ast.Node, page *bytecode.Page) error {
	switch node.Kind {
	case ast.KindSymbol:
		return c.compileSymbolUse(node, page)
	case ast.KindGetField:
		id, err := c.symbols.Intern(node.Text)
		if err != nil {
			return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
		}
		bytecode.PushInstructionWithOperand(page, bytecode.GET_FIELD, id)
		return nil
	case ast.KindNumber:
		id, err := c.values.Intern(bytecode.NumberValue(node.Number))
		if err != nil {
			return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
		}
		bytecode.PushInstructionWithOperand(page, bytecode.LOAD_CONST, id)
		return nil
	case ast.KindString:
		id, err := c.values.Intern(bytecode.StringValue(node.Text))
		if err != nil {
			return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
		}
		bytecode.PushInstructionWithOperand(page, bytecode.LOAD_CONST, id)
		return nil
	case ast.KindList:
		return c.compileList(node, page)
	default:
		return newError(InternalLogic, node.Pos, node.Snippet(), "unexpected node kind %v reaching compile()", node.Kind)
	}
}

func (c *Compiler) compileList(node ast.Node, page *bytecode.Page) error {
	if node.IsEmptyList() {
		idx, _ := bytecode.BuiltinIndex("nil")
		bytecode.PushInstructionWithOperand(page, bytecode.BUILTIN, uint16(idx))
		return nil
	}

	if name, ok := node.HeadSymbol(); ok {
		if inst, ok := bytecode.SpecificFormOpcode(name); ok {
			return c.compileSpecificForm(node, inst, page)
		}
	}

	if kw, ok := node.HeadKeyword(); ok {
		switch kw {
		case ast.If:
			return c.compileIf(node, page)
		case ast.While:
			return c.compileWhile(node, page)
		case ast.Let, ast.Mut, ast.Set:
			return c.compileLetMutSet(node, kw, page)
		case ast.Fun:
			return c.compileFun(node, page)
		case ast.Begin:
			return c.compileBegin(node, page)
		case ast.Quote:
			return c.compileQuote(node, page)
		case ast.Import:
			return c.compileImport(node, page)
		case ast.Del:
			return c.compileDel(node, page)
		default:
			return newError(InternalLogic, node.Pos, node.Snippet(), "unhandled keyword %v", kw)
		}
	}

	return c.compileCall(node, page)
}

// compileSymbolUse implements symbol-use resolution: builtin, then
// operator, then a plain interned symbol load, in that fixed order.
func (c *Compiler) compileSymbolUse(node ast.Node, page *bytecode.Page) error {
	if idx, ok := bytecode.BuiltinIndex(node.Text); ok {
		bytecode.PushInstructionWithOperand(page, bytecode.BUILTIN, uint16(idx))
		return nil
	}
	if idx, ok := bytecode.OperatorIndex(node.Text); ok {
		bytecode.PushInstruction(page, bytecode.OperatorOpcode(idx))
		return nil
	}
	id, err := c.symbols.Intern(node.Text)
	if err != nil {
		return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
	}
	bytecode.PushInstructionWithOperand(page, bytecode.LOAD_SYMBOL, id)
	return nil
}
