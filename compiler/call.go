package compiler

import (
	"github.com/Kannupriyasingh/Ark/ast"
	"github.com/Kannupriyasingh/Ark/bytecode"
)

// compileCall lowers a general call `(callee arg...)`. The callee
// (plus any GetField chain immediately following it) is compiled into
// a scratch temp page first, so its bytes can be spliced in after the
// arguments once it's known whether it is a function/builtin call or
// a single operator opcode.
func (c *Compiler) compileCall(node ast.Node, page *bytecode.Page) error {
	callee := node.List[0]
	rest := node.List[1:]

	temp := c.pages.PushTemp()
	if err := c.compile(callee, temp); err != nil {
		c.pages.PopTemp()
		return err
	}

	idx := 0
	for idx < len(rest) && rest[idx].Kind == ast.KindGetField {
		if err := c.compile(rest[idx], temp); err != nil {
			c.pages.PopTemp()
			return err
		}
		idx++
	}

	k := temp.Len()
	args := rest[idx:]

	if k > 1 {
		for _, a := range args {
			if err := c.compile(a, page); err != nil {
				c.pages.PopTemp()
				return err
			}
		}
		page.Bytes = append(page.Bytes, temp.Bytes...)
		c.pages.PopTemp()
		argc := ast.ArgCount(rest)
		bytecode.PushInstructionWithOperand(page, bytecode.CALL, uint16(argc))
		return nil
	}

	op := bytecode.Instruction(temp.Bytes[0])
	c.pages.PopTemp()
	return c.compileOperatorChain(node, op, args, page)
}

// compileOperatorChain lowers the variadic chaining rule: args compile
// left to right, folding in op as a binary instruction each time two
// operands have accumulated, with a trailing unary emission if exactly
// one argument was given. An operand is not complete the moment its
// node is compiled — a GetField or Capture immediately following it
// still belongs to the same operand (e.g. `obj.field` in
// `(+ a obj.field)`) — so completion is decided by lookahead: an
// operand finishes when it is the last child, or the next child is
// neither GetField nor Capture.
func (c *Compiler) compileOperatorChain(node ast.Node, op bytecode.Instruction, args []ast.Node, page *bytecode.Page) error {
	count := 0
	for i, a := range args {
		if err := c.compile(a, page); err != nil {
			return err
		}
		last := i == len(args)-1
		if !last {
			next := args[i+1]
			if next.Kind == ast.KindGetField || next.Kind == ast.KindCapture {
				continue
			}
		}
		count++
		if count >= 2 {
			bytecode.PushInstruction(page, op)
		}
	}
	if count == 1 {
		bytecode.PushInstruction(page, op)
	}
	if count > 2 {
		info, _ := bytecode.OperatorForOpcode(op)
		if !info.Chainable {
			return newError(BadChainedOperator, node.Pos, node.Snippet(),
				"can not create a chained expression of length %d for operator '%s'. You most likely forgot a ')'.", count, info.Symbol)
		}
	}
	return nil
}
