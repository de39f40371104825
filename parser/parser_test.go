package parser

import (
	"testing"

	"github.com/Kannupriyasingh/Ark/ast"
	"github.com/Kannupriyasingh/Ark/lexer"
)

func parseProgram(t *testing.T, src string) []ast.Node {
	p, err := New(lexer.NewLexer(src, "test.ark"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	forms, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return forms
}

func TestParseLiteral(t *testing.T) {
	forms := parseProgram(t, "42")
	if len(forms) != 1 || forms[0].Kind != ast.KindNumber || forms[0].Number != 42 {
		t.Fatalf("got %+v, want single Number(42)", forms)
	}
}

func TestParseLetAndUse(t *testing.T) {
	forms := parseProgram(t, "(let x 3) x")
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
	kw, ok := forms[0].HeadKeyword()
	if !ok || kw != ast.Let {
		t.Fatalf("forms[0] head keyword = %v, %v; want Let, true", kw, ok)
	}
	if forms[1].Kind != ast.KindSymbol || forms[1].Text != "x" {
		t.Fatalf("forms[1] = %+v, want Symbol(x)", forms[1])
	}
}

func TestParseCaptureInParamList(t *testing.T) {
	forms := parseProgram(t, "(fun (&x) x)")
	fn := forms[0]
	params := fn.List[1]
	if len(params.List) != 1 || params.List[0].Kind != ast.KindCapture || params.List[0].Text != "x" {
		t.Fatalf("params = %+v, want single Capture(x)", params.List)
	}
}

func TestParseGetFieldChain(t *testing.T) {
	forms := parseProgram(t, "(obj .field1 .field2 arg)")
	children := forms[0].List
	if children[1].Kind != ast.KindGetField || children[1].Text != "field1" {
		t.Fatalf("children[1] = %+v, want GetField(field1)", children[1])
	}
	if children[2].Kind != ast.KindGetField || children[2].Text != "field2" {
		t.Fatalf("children[2] = %+v, want GetField(field2)", children[2])
	}
}

func TestParseUnterminatedList(t *testing.T) {
	_, err := New(lexer.NewLexer("(let x 3", "test.ark"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, _ := New(lexer.NewLexer("(let x 3", "test.ark"))
	if _, err := p.ParseProgram(); err == nil {
		t.Errorf("expected error for unterminated list")
	}
}
