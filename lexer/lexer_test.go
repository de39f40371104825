package lexer

import "testing"

func collectTokens(t *testing.T, src string) []Token {
	l := NewLexer(src, "test.ark")
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

func TestLexerBasicList(t *testing.T) {
	toks := collectTokens(t, "(let x 3)")
	want := []TokenKind{LParen, Symbol, Symbol, Number, RParen, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerStringAndEscape(t *testing.T) {
	toks := collectTokens(t, `"hi\n"`)
	if toks[0].Kind != String || toks[0].Text != "hi\n" {
		t.Errorf("got %+v, want String hi\\n", toks[0])
	}
}

func TestLexerCaptureAndGetField(t *testing.T) {
	toks := collectTokens(t, "(&x .field)")
	want := []TokenKind{LParen, Ampersand, Symbol, Dot, Symbol, RParen, EOF}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexerComment(t *testing.T) {
	toks := collectTokens(t, "; comment\n42")
	if toks[0].Kind != Number || toks[0].Number != 42 {
		t.Errorf("got %+v, want Number 42", toks[0])
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`"unterminated`, "test.ark")
	_, err := l.NextToken()
	if err == nil {
		t.Errorf("expected error for unterminated string")
	}
}
