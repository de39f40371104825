// Package ast defines the tree the compiler consumes: it is produced by
// a parser, transformed by a macro processor, and optionally rewritten
// by an optimizer, all outside this module. The compiler only reads it.
package ast

import "fmt"

// Position is a source location, carried through parsing so compile
// errors can point back at the offending token.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Keyword enumerates the special forms recognized by the lowering
// dispatcher.
type Keyword int

const (
	If Keyword = iota
	Let
	Mut
	Set
	Fun
	Begin
	While
	Import
	Quote
	Del
)

func (k Keyword) String() string {
	switch k {
	case If:
		return "if"
	case Let:
		return "let"
	case Mut:
		return "mut"
	case Set:
		return "set"
	case Fun:
		return "fun"
	case Begin:
		return "begin"
	case While:
		return "while"
	case Import:
		return "import"
	case Quote:
		return "quote"
	case Del:
		return "del"
	default:
		return fmt.Sprintf("keyword(%d)", int(k))
	}
}

// Kind tags which variant a Node holds. The compiler's lowering
// dispatcher is an exhaustive switch over Kind.
type Kind int

const (
	KindSymbol Kind = iota
	KindNumber
	KindString
	KindKeyword
	KindGetField
	KindCapture
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindKeyword:
		return "Keyword"
	case KindGetField:
		return "GetField"
	case KindCapture:
		return "Capture"
	case KindList:
		return "List"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a single AST node. It is a tagged union rather than an
// interface-per-kind hierarchy: each payload field below documents the
// Kinds it serves, and every field not relevant to a node's Kind is
// zero. This mirrors the source AST's single Node class with a
// NodeType tag and a variant payload.
type Node struct {
	Kind Kind
	Pos  Position

	// Text holds the payload for Symbol, String, GetField, and Capture.
	Text string

	// Number holds the payload for Number.
	Number float64

	// KeywordVal holds the payload for Keyword.
	KeywordVal Keyword

	// List holds the children of a List node. Its head (List[0], if
	// any) determines how the compiler interprets the rest.
	List []Node
}

func Symbol(name string, pos Position) Node {
	return Node{Kind: KindSymbol, Text: name, Pos: pos}
}

func Number(v float64, pos Position) Node {
	return Node{Kind: KindNumber, Number: v, Pos: pos}
}

func String(s string, pos Position) Node {
	return Node{Kind: KindString, Text: s, Pos: pos}
}

func KeywordNode(k Keyword, pos Position) Node {
	return Node{Kind: KindKeyword, KeywordVal: k, Pos: pos}
}

func GetField(name string, pos Position) Node {
	return Node{Kind: KindGetField, Text: name, Pos: pos}
}

func Capture(name string, pos Position) Node {
	return Node{Kind: KindCapture, Text: name, Pos: pos}
}

func List(children []Node, pos Position) Node {
	return Node{Kind: KindList, List: children, Pos: pos}
}

// IsEmptyList reports whether n is a List with no children — the case
// the lowering dispatcher treats as the nil builtin.
func (n Node) IsEmptyList() bool {
	return n.Kind == KindList && len(n.List) == 0
}

// HeadSymbol returns the name of n's first child if n is a non-empty
// List headed by a Symbol, and ok=true. Used to recognize specific
// forms (list/append/concat/pop) before falling back to keyword or
// general-call dispatch.
func (n Node) HeadSymbol() (name string, ok bool) {
	if n.Kind != KindList || len(n.List) == 0 {
		return "", false
	}
	head := n.List[0]
	if head.Kind != KindSymbol {
		return "", false
	}
	return head.Text, true
}

// HeadKeyword returns the keyword of n's first child if n is a
// non-empty List headed by a Keyword, and ok=true.
func (n Node) HeadKeyword() (k Keyword, ok bool) {
	if n.Kind != KindList || len(n.List) == 0 {
		return 0, false
	}
	head := n.List[0]
	if head.Kind != KindKeyword {
		return 0, false
	}
	return head.KeywordVal, true
}

// ArgCount returns the number of children that are neither GetField
// nor Capture, the rule the lowering dispatcher uses to validate
// specific-form and call arity.
func ArgCount(children []Node) int {
	n := 0
	for _, c := range children {
		if c.Kind != KindGetField && c.Kind != KindCapture {
			n++
		}
	}
	return n
}

// Snippet renders a short, approximate source form of n for error
// messages. It is not a faithful unparse — just enough for a reader to
// recognize which form an error points at.
func (n Node) Snippet() string {
	switch n.Kind {
	case KindSymbol:
		return n.Text
	case KindNumber:
		return fmt.Sprintf("%g", n.Number)
	case KindString:
		return fmt.Sprintf("%q", n.Text)
	case KindKeyword:
		return n.KeywordVal.String()
	case KindGetField:
		return "." + n.Text
	case KindCapture:
		return "&" + n.Text
	case KindList:
		if len(n.List) == 0 {
			return "()"
		}
		head := n.List[0].Snippet()
		if len(n.List) == 1 {
			return "(" + head + ")"
		}
		return "(" + head + " ...)"
	default:
		return "<node>"
	}
}
