// Package parser builds ast.Node trees from a lexer.Lexer's token
// stream via straightforward recursive descent over s-expressions.
package parser

import (
	"fmt"

	"github.com/Kannupriyasingh/Ark/ast"
	"github.com/Kannupriyasingh/Ark/lexer"
)

var keywordNames = map[string]ast.Keyword{
	"if":     ast.If,
	"let":    ast.Let,
	"mut":    ast.Mut,
	"set":    ast.Set,
	"fun":    ast.Fun,
	"begin":  ast.Begin,
	"while":  ast.While,
	"import": ast.Import,
	"quote":  ast.Quote,
	"del":    ast.Del,
}

// Parser consumes a Lexer's token stream and builds ast.Node values.
type Parser struct {
	lex *lexer.Lexer
	tok lexer.Token
	err error
}

// New creates a Parser reading from lex. It primes the first token, so
// construction itself can fail on a bad leading token.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// ParseProgram reads every top-level form until EOF.
func (p *Parser) ParseProgram() ([]ast.Node, error) {
	var forms []ast.Node
	for p.tok.Kind != lexer.EOF {
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
	return forms, nil
}

func (p *Parser) parseExpr() (ast.Node, error) {
	switch p.tok.Kind {
	case lexer.LParen:
		return p.parseList()
	case lexer.Number:
		n := ast.Number(p.tok.Number, p.tok.Pos)
		return n, p.advance()
	case lexer.String:
		n := ast.String(p.tok.Text, p.tok.Pos)
		return n, p.advance()
	case lexer.Ampersand:
		pos := p.tok.Pos
		if err := p.advance(); err != nil {
			return ast.Node{}, err
		}
		if p.tok.Kind != lexer.Symbol {
			return ast.Node{}, fmt.Errorf("%s: expected symbol after '&'", pos)
		}
		name := p.tok.Text
		return ast.Capture(name, pos), p.advance()
	case lexer.Dot:
		pos := p.tok.Pos
		if err := p.advance(); err != nil {
			return ast.Node{}, err
		}
		if p.tok.Kind != lexer.Symbol {
			return ast.Node{}, fmt.Errorf("%s: expected symbol after '.'", pos)
		}
		name := p.tok.Text
		return ast.GetField(name, pos), p.advance()
	case lexer.Symbol:
		pos := p.tok.Pos
		text := p.tok.Text
		if err := p.advance(); err != nil {
			return ast.Node{}, err
		}
		if kw, ok := keywordNames[text]; ok {
			return ast.KeywordNode(kw, pos), nil
		}
		return ast.Symbol(text, pos), nil
	default:
		return ast.Node{}, fmt.Errorf("%s: unexpected token %s", p.tok.Pos, p.tok.Kind)
	}
}

func (p *Parser) parseList() (ast.Node, error) {
	pos := p.tok.Pos
	if err := p.advance(); err != nil { // consume '('
		return ast.Node{}, err
	}
	var children []ast.Node
	for p.tok.Kind != lexer.RParen {
		if p.tok.Kind == lexer.EOF {
			return ast.Node{}, fmt.Errorf("%s: unterminated list", pos)
		}
		child, err := p.parseExpr()
		if err != nil {
			return ast.Node{}, err
		}
		children = append(children, child)
	}
	if err := p.advance(); err != nil { // consume ')'
		return ast.Node{}, err
	}
	return ast.List(children, pos), nil
}
