package compiler

import (
	"github.com/Kannupriyasingh/Ark/ast"
	"github.com/Kannupriyasingh/Ark/bytecode"
)

// compileSpecificForm lowers list/append/append!/concat/concat!/pop.
// Arguments compile in reverse positional order, except that a run of
// GetField children must stay immediately to the left of the
// non-GetField argument it modifies.
func (c *Compiler) compileSpecificForm(node ast.Node, inst bytecode.Instruction, page *bytecode.Page) error {
	children := node.List[1:]
	argc := ast.ArgCount(children)
	if inst != bytecode.LIST && argc < 2 {
		name, _ := node.HeadSymbol()
		return newError(ArityTooLow, node.Pos, node.Snippet(), "can not use %s with less than 2 arguments", name)
	}

	i := len(children) - 1
	for i >= 0 {
		if children[i].Kind != ast.KindGetField {
			j := i
			for j > 0 && children[j-1].Kind == ast.KindGetField {
				j--
			}
			for k := j; k < i; k++ {
				if err := c.compile(children[k], page); err != nil {
					return err
				}
			}
			if err := c.compile(children[i], page); err != nil {
				return err
			}
			i = j - 1
		} else {
			if err := c.compile(children[i], page); err != nil {
				return err
			}
			i--
		}
	}

	switch inst {
	case bytecode.LIST:
		bytecode.PushInstructionWithOperand(page, inst, uint16(argc))
	case bytecode.APPEND, bytecode.APPEND_IN_PLACE, bytecode.CONCAT, bytecode.CONCAT_IN_PLACE:
		bytecode.PushInstructionWithOperand(page, inst, uint16(argc-1))
	case bytecode.POP:
		bytecode.PushInstruction(page, inst)
	}
	return nil
}

// compileIf lowers `(if cond then [else])`.
func (c *Compiler) compileIf(node ast.Node, page *bytecode.Page) error {
	children := node.List[1:]
	cond, then := children[0], children[1]
	var elseExpr *ast.Node
	if len(children) > 2 {
		e := children[2]
		elseExpr = &e
	}

	if err := c.compile(cond, page); err != nil {
		return err
	}
	truePatch := page.EmitJumpPlaceholder(bytecode.POP_JUMP_IF_TRUE)
	if elseExpr != nil {
		if err := c.compile(*elseExpr, page); err != nil {
			return err
		}
	}
	endPatch := page.EmitJumpPlaceholder(bytecode.JUMP)
	page.PatchU16BE(truePatch, uint16(page.Len()))
	if err := c.compile(then, page); err != nil {
		return err
	}
	page.PatchU16BE(endPatch, uint16(page.Len()))
	return nil
}

// compileWhile lowers `(while cond body)`.
func (c *Compiler) compileWhile(node ast.Node, page *bytecode.Page) error {
	children := node.List[1:]
	cond, body := children[0], children[1]

	loopStart := page.Len()
	if err := c.compile(cond, page); err != nil {
		return err
	}
	exitPatch := page.EmitJumpPlaceholder(bytecode.POP_JUMP_IF_FALSE)
	if err := c.compile(body, page); err != nil {
		return err
	}
	jumpBack := page.EmitJumpPlaceholder(bytecode.JUMP)
	page.PatchU16BE(jumpBack, uint16(loopStart))
	page.PatchU16BE(exitPatch, uint16(page.Len()))
	return nil
}

// compileLetMutSet lowers `(let|mut|set name expr...)`: every child
// from index 2 onward is compiled (letting `(let x a b c)` push
// several values and bind the last), then the binding opcode is
// emitted with the interned name's id. For let/mut, name is marked
// defined before its value expressions compile, not after — so a
// function literal bound by the same let may capture its own name,
// e.g. `(let x (fun (&x) x))`.
func (c *Compiler) compileLetMutSet(node ast.Node, kw ast.Keyword, page *bytecode.Page) error {
	name := node.List[1].Text
	id, err := c.symbols.Intern(name)
	if err != nil {
		return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
	}

	var inst bytecode.Instruction
	switch kw {
	case ast.Let:
		inst = bytecode.LET
		c.defined[name] = true
	case ast.Mut:
		inst = bytecode.MUT
		c.defined[name] = true
	case ast.Set:
		inst = bytecode.STORE
	}

	for _, expr := range node.List[2:] {
		if err := c.compile(expr, page); err != nil {
			return err
		}
	}

	bytecode.PushInstructionWithOperand(page, inst, id)
	return nil
}

// compileFun lowers `(fun (params...) body...)`.
func (c *Compiler) compileFun(node ast.Node, enclosing *bytecode.Page) error {
	params := node.List[1]
	body := node.List[2:]

	for _, param := range params.List {
		if param.Kind != ast.KindCapture {
			continue
		}
		if !c.defined[param.Text] {
			return newError(UnboundCapture, param.Pos, param.Snippet(), "capture of undefined variable '%s'", param.Text)
		}
		id, err := c.symbols.Intern(param.Text)
		if err != nil {
			return newError(TooManyNames, param.Pos, param.Snippet(), "%v", err)
		}
		bytecode.PushInstructionWithOperand(enclosing, bytecode.CAPTURE, id)
		c.defined[param.Text] = true
	}

	fID := c.pages.NewPage()
	fPage := c.pages.Page(int(fID))

	valID, err := c.values.Intern(bytecode.PageAddrValue(fID))
	if err != nil {
		return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
	}
	bytecode.PushInstructionWithOperand(enclosing, bytecode.LOAD_CONST, valID)

	for _, param := range params.List {
		if param.Kind != ast.KindSymbol {
			continue
		}
		id, err := c.symbols.Intern(param.Text)
		if err != nil {
			return newError(TooManyNames, param.Pos, param.Snippet(), "%v", err)
		}
		bytecode.PushInstructionWithOperand(fPage, bytecode.MUT, id)
		c.defined[param.Text] = true
	}

	for _, expr := range body {
		if err := c.compile(expr, fPage); err != nil {
			return err
		}
	}
	bytecode.PushInstruction(fPage, bytecode.RET)
	return nil
}

// compileBegin lowers `(begin expr...)`: each child compiles in order
// into the same page, with no opcode of its own.
func (c *Compiler) compileBegin(node ast.Node, page *bytecode.Page) error {
	for _, expr := range node.List[1:] {
		if err := c.compile(expr, page); err != nil {
			return err
		}
	}
	return nil
}

// compileQuote lowers `(quote expr)`: expr compiles into a fresh page
// that is never executed inline, only referenced as a value.
func (c *Compiler) compileQuote(node ast.Node, enclosing *bytecode.Page) error {
	qID := c.pages.NewPage()
	qPage := c.pages.Page(int(qID))
	if err := c.compile(node.List[1], qPage); err != nil {
		return err
	}
	bytecode.PushInstruction(qPage, bytecode.RET)

	valID, err := c.values.Intern(bytecode.PageAddrValue(qID))
	if err != nil {
		return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
	}
	bytecode.PushInstructionWithOperand(enclosing, bytecode.LOAD_CONST, valID)
	return nil
}

// compileImport lowers `(import "path")`: the path is interned as a
// string value, recorded for the undefined-symbol checker's plugin
// prefix rule, and referenced by a PLUGIN instruction.
func (c *Compiler) compileImport(node ast.Node, page *bytecode.Page) error {
	pathNode := node.List[1]
	valID, err := c.values.Intern(bytecode.StringValue(pathNode.Text))
	if err != nil {
		return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
	}
	c.plugins = append(c.plugins, pathNode.Text)
	bytecode.PushInstructionWithOperand(page, bytecode.PLUGIN, valID)
	return nil
}

// compileDel lowers `(del name)`. It intentionally does not remove
// name from the defined-symbols set: a symbol used after del still
// passes the undefined-symbol checker, matching the behavior being
// preserved here.
func (c *Compiler) compileDel(node ast.Node, page *bytecode.Page) error {
	name := node.List[1].Text
	id, err := c.symbols.Intern(name)
	if err != nil {
		return newError(TooManyNames, node.Pos, node.Snippet(), "%v", err)
	}
	bytecode.PushInstructionWithOperand(page, bytecode.DEL, id)
	return nil
}
