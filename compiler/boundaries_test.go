package compiler

import (
	"strconv"
	"testing"
)

func TestArityTooLowOnAppendAndPop(t *testing.T) {
	cases := []string{"(append x)", "(pop)"}
	for _, src := range cases {
		c := NewCompiler(0, nil, 0)
		if err := c.Feed(src, "t.ark"); err != nil {
			t.Fatalf("Feed(%q): %v", src, err)
		}
		err := c.Compile()
		cerr, ok := err.(*Error)
		if !ok || cerr.Kind != ArityTooLow {
			t.Errorf("%q: err = %v, want *Error{Kind: ArityTooLow}", src, err)
		}
	}
}

func TestChainedOperatorAcceptsLongAddChain(t *testing.T) {
	c := NewCompiler(0, nil, 0)
	if err := c.Feed("(+ 1 2 3 4)", "t.ark"); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := c.Compile(); err != nil {
		t.Errorf("Compile: %v, want a chainable '+' to accept 4 operands", err)
	}
}

func TestUnboundCaptureInFunction(t *testing.T) {
	c := NewCompiler(0, nil, 0)
	if err := c.Feed("(fun (&x) x)", "t.ark"); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	err := c.Compile()
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != UnboundCapture {
		t.Fatalf("err = %v, want *Error{Kind: UnboundCapture}", err)
	}
}

func TestCaptureOfDefinedOuterVariableSucceeds(t *testing.T) {
	c := NewCompiler(0, nil, 0)
	if err := c.Feed("(let x 1) (fun (&x) x)", "t.ark"); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := c.Compile(); err != nil {
		t.Errorf("Compile: %v, want capture of a let-bound outer variable to succeed", err)
	}
}

func TestSymbolTableBoundaryAtCompilerLevel(t *testing.T) {
	// 65535 distinct let-bindings succeed; the 65536th fails with
	// TooManyNames. Exercised once at the full Compiler level (the
	// bytecode.SymbolTable package itself already covers the boundary
	// in isolation) to confirm the compiler surfaces the table's error
	// rather than swallowing or wrapping it unrecognizably.
	var src string
	for i := 0; i < 65535; i++ {
		src += "(let s" + strconv.Itoa(i) + " " + strconv.Itoa(i) + ") "
	}
	c := NewCompiler(0, nil, 0)
	if err := c.Feed(src, "t.ark"); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := c.Compile(); err != nil {
		t.Fatalf("Compile at exactly 65535 names: %v, want success", err)
	}

	c2 := NewCompiler(0, nil, 0)
	if err := c2.Feed(src+"(let overflow 0)", "t.ark"); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	err := c2.Compile()
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != TooManyNames {
		t.Fatalf("err = %v, want *Error{Kind: TooManyNames} at the 65536th name", err)
	}
}
