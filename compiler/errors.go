package compiler

import (
	"fmt"

	"github.com/Kannupriyasingh/Ark/ast"
)

// ErrorKind classifies a fatal compilation error. Every error the
// compiler produces carries exactly one of these.
type ErrorKind int

const (
	TooManyNames ErrorKind = iota
	ArityTooLow
	UnboundCapture
	BadChainedOperator
	UndefinedSymbol
	InternalLogic
	IO
)

func (k ErrorKind) String() string {
	switch k {
	case TooManyNames:
		return "TooManyNames"
	case ArityTooLow:
		return "ArityTooLow"
	case UnboundCapture:
		return "UnboundCapture"
	case BadChainedOperator:
		return "BadChainedOperator"
	case UndefinedSymbol:
		return "UndefinedSymbol"
	case InternalLogic:
		return "InternalLogic"
	case IO:
		return "IO"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a fatal compilation error. The compiler never recovers from
// one locally: feed/compile/save abort and produce no artifact.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     ast.Position
	Snippet string
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 && e.Pos.Column == 0 && e.Pos.File == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Snippet != "" {
		return fmt.Sprintf("%s: %s (at %s: %q)", e.Kind, e.Message, e.Pos, e.Snippet)
	}
	return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Pos)
}

func newError(kind ErrorKind, pos ast.Position, snippet string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Snippet: snippet,
	}
}
